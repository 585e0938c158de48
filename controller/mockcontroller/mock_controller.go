package mockcontroller

import (
	"context"

	"github.com/mww/fantasy_report/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) Report(ctx context.Context) (*model.Report, error) {
	args := c.Called(ctx)

	var r *model.Report
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Report)
	}

	return r, args.Error(1)
}

func (c *C) Rebuild(ctx context.Context) (*model.Report, error) {
	args := c.Called(ctx)

	var r *model.Report
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Report)
	}

	return r, args.Error(1)
}

func (c *C) PointsFor(ctx context.Context, filter model.PointsFilter) ([]model.TeamWeekPoints, error) {
	args := c.Called(ctx, filter)

	var res []model.TeamWeekPoints
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamWeekPoints)
	}

	return res, args.Error(1)
}

func (c *C) Week(ctx context.Context, week int) (*model.WeekReport, error) {
	args := c.Called(ctx, week)

	var w *model.WeekReport
	if args.Get(0) != nil {
		w = args.Get(0).(*model.WeekReport)
	}

	return w, args.Error(1)
}

func (c *C) Matchup(ctx context.Context, week, index int) (*model.MatchupSheet, error) {
	args := c.Called(ctx, week, index)

	var s *model.MatchupSheet
	if args.Get(0) != nil {
		s = args.Get(0).(*model.MatchupSheet)
	}

	return s, args.Error(1)
}
