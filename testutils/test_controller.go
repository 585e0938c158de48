package testutils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/fantasy_report/loader"
)

// GeneratedAt is the mock clock's time in a TestController.
var GeneratedAt = time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)

// TestController is a ready to load test league on disk: the CSV exports of
// Weeks and a league file, plus a mock clock.
type TestController struct {
	Clock      *clock.Mock
	DataDir    string
	LeagueFile string
}

func NewTestController(t *testing.T) *TestController {
	t.Helper()
	dir := t.TempDir()

	c := &TestController{
		Clock:      clock.NewMock(),
		DataDir:    filepath.Join(dir, "data"),
		LeagueFile: filepath.Join(dir, "league.yaml"),
	}
	c.Clock.Set(GeneratedAt)

	WriteCSVExports(t, c.DataDir)
	WriteFile(t, c.LeagueFile, LeagueYAML)
	return c
}

func (c *TestController) Source() *loader.CSVDir {
	return loader.NewCSVDir(c.DataDir)
}
