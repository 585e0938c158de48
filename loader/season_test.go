package loader_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/loader/mockloader"
	"github.com/mww/fantasy_report/model"
	"github.com/mww/fantasy_report/testutils"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// mockWeeks sets up src to serve testutils.Weeks for the given weeks.
func mockWeeks(src *mockloader.Source, weeks ...int) {
	for _, n := range weeks {
		games := testutils.Weeks[n]
		src.On("LoadMatchupSummary", mock.Anything, n).Return(testutils.Summaries(games), nil)
		for i, g := range games {
			src.On("LoadRosterTables", mock.Anything, n, i+1).Return(testutils.Tables(g), nil)
		}
	}
}

func TestLoadSeason(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteCSVExports(t, dir)

	res, err := loader.LoadSeason(context.Background(), loader.NewCSVDir(dir),
		loader.Options{Weeks: testutils.WeekNumbers}, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Skipped) != 0 {
		t.Errorf("expected no skipped weeks, got %v", res.Skipped)
	}
	if !reflect.DeepEqual(res.Season.WeekNumbers(), testutils.WeekNumbers) {
		t.Errorf("expected weeks %v, got %v", testutils.WeekNumbers, res.Season.WeekNumbers())
	}
	if len(res.Season.Teams()) != testutils.LeagueSize {
		t.Errorf("expected %d teams, got %d", testutils.LeagueSize, len(res.Season.Teams()))
	}

	w, _ := res.Season.Week(4)
	expected := []string{testutils.TeamHail, testutils.TeamRed, testutils.TeamHurry}
	if !reflect.DeepEqual(w.Winners(), expected) {
		t.Errorf("expected week 4 winners %v, got %v", expected, w.Winners())
	}
}

func TestLoadSeason_noWeeks(t *testing.T) {
	_, err := loader.LoadSeason(context.Background(), &mockloader.Source{}, loader.Options{}, zap.NewNop().Sugar())
	if !errors.Is(err, model.ErrMetricUndefined) {
		t.Errorf("expected ErrMetricUndefined, got: %v", err)
	}
}

func TestLoadSeason_skipMalformedWeek(t *testing.T) {
	src := &mockloader.Source{}
	mockWeeks(src, 1, 3)
	src.On("LoadMatchupSummary", mock.Anything, 2).Return(nil, &model.ParseError{Week: 2, Table: "summary", Row: 1, Err: errors.New("bad")})

	core, logs := observer.New(zapcore.WarnLevel)
	res, err := loader.LoadSeason(context.Background(), src,
		loader.Options{Weeks: []int{1, 2, 3}, SkipMalformedWeeks: true}, zap.New(core).Sugar())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(res.Skipped, []int{2}) {
		t.Errorf("expected week 2 to be skipped, got %v", res.Skipped)
	}
	if !reflect.DeepEqual(res.Season.WeekNumbers(), []int{1, 3}) {
		t.Errorf("expected weeks [1 3], got %v", res.Season.WeekNumbers())
	}
	if logs.FilterMessage("skipping malformed week").Len() != 1 {
		t.Errorf("expected the skipped week to be logged, got %v", logs.All())
	}
	src.AssertExpectations(t)
}

func TestLoadSeason_malformedWeekAborts(t *testing.T) {
	src := &mockloader.Source{}
	mockWeeks(src, 1)
	bad := testutils.Tables(testutils.Weeks[2][0])
	bad.Team1.Starting = bad.Team1.Starting[:5]
	src.On("LoadMatchupSummary", mock.Anything, 2).Return(testutils.Summaries(testutils.Weeks[2]), nil)
	src.On("LoadRosterTables", mock.Anything, 2, 1).Return(bad, nil)

	_, err := loader.LoadSeason(context.Background(), src, loader.Options{Weeks: []int{1, 2}}, zap.NewNop().Sugar())
	if !errors.Is(err, model.ErrMalformedInput) {
		t.Fatalf("expected a malformed input error, got: %v", err)
	}
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got %T", err)
	}
	if pe.Week != 2 || pe.Matchup != 1 || pe.Team != testutils.TeamHail || pe.Row != 5 {
		t.Errorf("unexpected error location: %+v", pe)
	}
}

func TestLoadSeason_missingExportAlwaysAborts(t *testing.T) {
	src := &mockloader.Source{}
	mockWeeks(src, 1)
	src.On("LoadMatchupSummary", mock.Anything, 2).Return(nil, errors.Wrap(loader.ErrNotFound, "week2"))

	_, err := loader.LoadSeason(context.Background(), src,
		loader.Options{Weeks: []int{1, 2}, SkipMalformedWeeks: true}, zap.NewNop().Sugar())
	if !errors.Is(err, loader.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestLoadSeason_pairingNotOnScoreboard(t *testing.T) {
	src := &mockloader.Source{}
	games := testutils.Weeks[1]
	src.On("LoadMatchupSummary", mock.Anything, 1).Return(testutils.Summaries(games[1:]), nil)
	src.On("LoadRosterTables", mock.Anything, 1, 1).Return(testutils.Tables(games[0]), nil)

	_, err := loader.LoadSeason(context.Background(), src,
		loader.Options{Weeks: []int{1}, MatchupsPerWeek: 1}, zap.NewNop().Sugar())
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got: %v", err)
	}
	if pe.Table != "summary" || pe.Week != 1 || pe.Matchup != 1 {
		t.Errorf("unexpected error location: %+v", pe)
	}
}

func TestLoadSeason_scoreboardLineNotLoaded(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteCSVExports(t, dir)

	_, err := loader.LoadSeason(context.Background(), loader.NewCSVDir(dir),
		loader.Options{Weeks: testutils.WeekNumbers, MatchupsPerWeek: 1}, zap.NewNop().Sugar())
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got: %v", err)
	}
	second := testutils.Weeks[1][1]
	if pe.Table != "summary" || pe.Week != 1 || pe.Row != 1 || pe.Team != second.Team1 {
		t.Errorf("unexpected error location: %+v", pe)
	}
}

func TestLoadSeason_scoreboardLineLoadedTwice(t *testing.T) {
	src := &mockloader.Source{}
	games := testutils.Weeks[1]
	src.On("LoadMatchupSummary", mock.Anything, 1).Return(testutils.Summaries(games), nil)
	src.On("LoadRosterTables", mock.Anything, 1, 1).Return(testutils.Tables(games[0]), nil)
	src.On("LoadRosterTables", mock.Anything, 1, 2).Return(testutils.Tables(games[0]), nil)

	_, err := loader.LoadSeason(context.Background(), src,
		loader.Options{Weeks: []int{1}, MatchupsPerWeek: 2}, zap.NewNop().Sugar())
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got: %v", err)
	}
	if pe.Table != "summary" || pe.Matchup != 2 || pe.Row != 0 {
		t.Errorf("unexpected error location: %+v", pe)
	}
}

func TestLoadSeason_scoreMismatchIsLogged(t *testing.T) {
	src := &mockloader.Source{}
	games := testutils.Weeks[1]
	summaries := testutils.Summaries(games)
	summaries[0].Team1Score += 5
	src.On("LoadMatchupSummary", mock.Anything, 1).Return(summaries, nil)
	for i, g := range games {
		src.On("LoadRosterTables", mock.Anything, 1, i+1).Return(testutils.Tables(g), nil)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	_, err := loader.LoadSeason(context.Background(), src, loader.Options{Weeks: []int{1}}, zap.New(core).Sugar())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("roster total does not match the scoreboard").All()
	if len(entries) != 1 {
		t.Fatalf("expected one mismatch warning, got %d", len(entries))
	}
	if team := entries[0].ContextMap()["team"]; team != testutils.TeamHail {
		t.Errorf("expected the warning for %s, got %v", testutils.TeamHail, team)
	}
}

func TestLoadSeason_benchFallback(t *testing.T) {
	src := &mockloader.Source{}
	games := testutils.Weeks[1]
	tables := testutils.Tables(games[0])
	tables.Team1.Starting = tables.Team1.Starting[:8]
	tables.Team1.Bench = append(tables.Team1.Bench, model.RosterRow{Descriptor: "Buffalo - DEF", Proj: 7, FanPts: 9})

	src.On("LoadMatchupSummary", mock.Anything, 1).Return(testutils.Summaries(games), nil)
	src.On("LoadRosterTables", mock.Anything, 1, 1).Return(tables, nil)
	for i, g := range games[1:] {
		src.On("LoadRosterTables", mock.Anything, 1, i+2).Return(testutils.Tables(g), nil)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	res, err := loader.LoadSeason(context.Background(), src,
		loader.Options{Weeks: []int{1}, BenchFallback: true}, zap.New(core).Sugar())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, _ := res.Season.Week(1)
	r, _ := w.Roster(testutils.TeamHail)
	def, _ := r.Player(model.SLOT_DEF)
	if def.Name != "Buffalo" || def.FanPoints != 9 {
		t.Errorf("expected the DEF slot from the bench table, got %v", def)
	}
	if logs.FilterMessage("starting slots read from the bench table").Len() != 1 {
		t.Errorf("expected the fallback to be logged, got %v", logs.All())
	}
}
