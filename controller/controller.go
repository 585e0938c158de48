package controller

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/mww/fantasy_report/leaguedata"
	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/model"
	"github.com/mww/fantasy_report/season"
	"go.uber.org/zap"
)

var (
	// ErrNoReport is returned before the first successful build.
	ErrNoReport = errors.New("no report has been built")
	ErrNotFound = errors.New("not found")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Report returns the most recently built report. Reports are never
	// modified once built.
	Report(ctx context.Context) (*model.Report, error)
	// Rebuild reloads the league file and every week, and replaces the current
	// report. A failed build keeps the previous report.
	Rebuild(ctx context.Context) (*model.Report, error)

	// PointsFor is the points-for distribution limited to one position group.
	PointsFor(ctx context.Context, filter model.PointsFilter) ([]model.TeamWeekPoints, error)
	Week(ctx context.Context, week int) (*model.WeekReport, error)
	Matchup(ctx context.Context, week, index int) (*model.MatchupSheet, error)
}

type Options struct {
	LeagueFile         string
	Load               loader.Options
	PowerRankingWindow int
}

type controller struct {
	clock  clock.Clock
	src    loader.Source
	opts   Options
	logger *zap.SugaredLogger

	// buildMu serializes Rebuild so reports are swapped in build order.
	buildMu sync.Mutex

	mu     sync.RWMutex
	report *model.Report
	season *season.Season
}

func New(clock clock.Clock, src loader.Source, opts Options, logger *zap.SugaredLogger) (C, error) {
	if src == nil {
		return nil, errors.New("a source is required")
	}
	if opts.PowerRankingWindow <= 0 {
		opts.PowerRankingWindow = model.DefaultPowerRankingWindow
	}

	c := &controller{
		clock:  clock,
		src:    src,
		opts:   opts,
		logger: logger,
	}
	return c, nil
}

func (c *controller) Report(ctx context.Context) (*model.Report, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.report == nil {
		return nil, ErrNoReport
	}
	return c.report, nil
}

func (c *controller) Rebuild(ctx context.Context) (*model.Report, error) {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	start := c.clock.Now()

	r, s, err := c.build(ctx)
	buildDuration.Observe(c.clock.Since(start).Seconds())
	if err != nil {
		reportBuilds.WithLabelValues("error").Inc()
		c.logger.Errorw("report build failed", "error", err)
		return nil, err
	}
	reportBuilds.WithLabelValues("success").Inc()
	skippedWeeks.Set(float64(len(r.SkippedWeeks)))

	c.mu.Lock()
	c.report, c.season = r, s
	c.mu.Unlock()

	c.logger.Infow("built report", "report_id", r.ID, "weeks", r.Weeks, "skipped", r.SkippedWeeks)
	return r, nil
}

func (c *controller) build(ctx context.Context) (*model.Report, *season.Season, error) {
	data, err := leaguedata.Load(c.opts.LeagueFile)
	if err != nil {
		return nil, nil, err
	}

	loadOpts := c.opts.Load
	loadOpts.Abbrevs = data.Abbrevs
	res, err := loader.LoadSeason(ctx, c.src, loadOpts, c.logger)
	if err != nil {
		return nil, nil, err
	}

	r, err := res.Season.Report(data, c.opts.PowerRankingWindow)
	if err != nil {
		return nil, nil, err
	}
	r.ID = uuid.NewString()
	r.Generated = c.clock.Now().UTC()
	r.SkippedWeeks = res.Skipped
	return r, res.Season, nil
}

func (c *controller) PointsFor(ctx context.Context, filter model.PointsFilter) ([]model.TeamWeekPoints, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.season == nil {
		return nil, ErrNoReport
	}
	return c.season.PointsForSeries(filter), nil
}

func (c *controller) Week(ctx context.Context, week int) (*model.WeekReport, error) {
	r, err := c.Report(ctx)
	if err != nil {
		return nil, err
	}

	w, ok := r.Week(week)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "week %d", week)
	}
	return w, nil
}

func (c *controller) Matchup(ctx context.Context, week, index int) (*model.MatchupSheet, error) {
	w, err := c.Week(ctx, week)
	if err != nil {
		return nil, err
	}

	for i := range w.Matchups {
		if w.Matchups[i].Index == index {
			return &w.Matchups[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "week %d matchup %d", week, index)
}
