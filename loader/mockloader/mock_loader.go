package mockloader

import (
	"context"

	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/model"
	"github.com/stretchr/testify/mock"
)

type Source struct {
	mock.Mock
}

func (s *Source) LoadRosterTables(ctx context.Context, week, index int) (*loader.MatchupTables, error) {
	args := s.Called(ctx, week, index)

	var t *loader.MatchupTables
	if args.Get(0) != nil {
		t = args.Get(0).(*loader.MatchupTables)
	}

	return t, args.Error(1)
}

func (s *Source) LoadMatchupSummary(ctx context.Context, week int) ([]model.MatchupSummary, error) {
	args := s.Called(ctx, week)

	var res []model.MatchupSummary
	if args.Get(0) != nil {
		res = args.Get(0).([]model.MatchupSummary)
	}

	return res, args.Error(1)
}
