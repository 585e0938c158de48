package loader

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
	"go.uber.org/zap"
)

// CSVCache reads through a cache directory of converted CSV exports. Weeks
// and matchups already present in the cache are read from it; anything else
// is loaded from the wrapped source and written to the cache. Existing cache
// files are never overwritten.
type CSVCache struct {
	src    Source
	dir    *CSVDir
	logger *zap.SugaredLogger
}

func NewCSVCache(src Source, root string, logger *zap.SugaredLogger) *CSVCache {
	return &CSVCache{src: src, dir: NewCSVDir(root), logger: logger}
}

func (c *CSVCache) LoadRosterTables(ctx context.Context, week, index int) (*MatchupTables, error) {
	t, err := c.dir.LoadRosterTables(ctx, week, index)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return t, err
	}

	t, err = c.src.LoadRosterTables(ctx, week, index)
	if err != nil {
		return nil, err
	}

	path := MatchupCSVPath(c.dir.Root(), week, index)
	if err := writeNew(path, func(w io.Writer) error { return WriteRosterCSV(w, t) }); err != nil {
		return nil, err
	}
	c.logger.Debugw("cached matchup export", "week", week, "matchup", index, "path", path)
	return t, nil
}

func (c *CSVCache) LoadMatchupSummary(ctx context.Context, week int) ([]model.MatchupSummary, error) {
	res, err := c.dir.LoadMatchupSummary(ctx, week)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return res, err
	}

	res, err = c.src.LoadMatchupSummary(ctx, week)
	if err != nil {
		return nil, err
	}

	path := SummaryCSVPath(c.dir.Root(), week)
	if err := writeNew(path, func(w io.Writer) error { return WriteSummaryCSV(w, res) }); err != nil {
		return nil, err
	}
	c.logger.Debugw("cached scoreboard", "week", week, "path", path)
	return res, nil
}

// writeNew creates path and fills it with write. An existing file is left
// untouched.
func writeNew(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
