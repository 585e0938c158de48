// Package loader turns weekly league exports into the season model. The
// exports themselves come from a Source; CSVDir reads the converted CSV
// cache and the platforms packages read the provider's raw pages.
package loader

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
)

// ErrNotFound is returned when an export for a week or matchup does not exist.
var ErrNotFound = errors.New("export not found")

// TeamTables are the two parsed tables for one side of a matchup.
type TeamTables struct {
	Team     string
	Starting []model.RosterRow
	Bench    []model.RosterRow
}

// MatchupTables is one detailed matchup export.
type MatchupTables struct {
	Team1 TeamTables
	Team2 TeamTables
}

// RosterTables loads the detailed export of a single matchup. index starts at 1.
type RosterTables interface {
	LoadRosterTables(ctx context.Context, week, index int) (*MatchupTables, error)
}

// MatchupSummaries loads the scoreboard of a week.
type MatchupSummaries interface {
	LoadMatchupSummary(ctx context.Context, week int) ([]model.MatchupSummary, error)
}

type Source interface {
	RosterTables
	MatchupSummaries
}
