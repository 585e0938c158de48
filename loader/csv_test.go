package loader_test

import (
	"bytes"
	"context"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/model"
	"github.com/mww/fantasy_report/platforms/yahoo"
	"github.com/mww/fantasy_report/testutils"
	"go.uber.org/zap"
)

func TestReadRosterCSV(t *testing.T) {
	in := `Index,Team,Table,Player,Proj,Fan Pts
0,Hail Marys,Starting,Josh AllenBUF - QB,21.5,30.12
1,Hail Marys,bench,Reserve 1NYJ - WR,5,-
2,Pick Six,starting,Baltimore - DEF,8,12
3,Pick Six,bench,Travis KelceKC - TE,,4.5
`
	got, err := loader.ReadRosterCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := &loader.MatchupTables{
		Team1: loader.TeamTables{
			Team:     "Hail Marys",
			Starting: []model.RosterRow{{Descriptor: "Josh AllenBUF - QB", Proj: 21.5, FanPts: 30.12}},
			Bench:    []model.RosterRow{{Descriptor: "Reserve 1NYJ - WR", Proj: 5, FanPts: 0}},
		},
		Team2: loader.TeamTables{
			Team:     "Pick Six",
			Starting: []model.RosterRow{{Descriptor: "Baltimore - DEF", Proj: 8, FanPts: 12}},
			Bench:    []model.RosterRow{{Descriptor: "Travis KelceKC - TE", Proj: 0, FanPts: 4.5}},
		},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestReadRosterCSV_errors(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		field string
	}{
		{
			name:  "missing column",
			in:    "Team,Table,Player,Proj\nA,starting,x,1\n",
			field: "fan pts",
		},
		{
			name:  "bad score",
			in:    "Team,Table,Player,Proj,Fan Pts\nA,starting,x,1,abc\nB,starting,y,1,1\n",
			field: "fan pts",
		},
		{
			name:  "unknown table",
			in:    "Team,Table,Player,Proj,Fan Pts\nA,taxi,x,1,1\n",
			field: "table",
		},
		{
			name:  "third team",
			in:    "Team,Table,Player,Proj,Fan Pts\nA,starting,x,1,1\nB,starting,y,1,1\nC,starting,z,1,1\n",
			field: "team",
		},
		{
			name:  "empty team",
			in:    "Team,Table,Player,Proj,Fan Pts\n,starting,x,1,1\n",
			field: "team",
		},
		{
			name: "one team",
			in:   "Team,Table,Player,Proj,Fan Pts\nA,starting,x,1,1\n",
		},
		{
			name: "empty file",
			in:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.ReadRosterCSV(strings.NewReader(tc.in))
			if !errors.Is(err, model.ErrMalformedInput) {
				t.Fatalf("input: '%s', expected a malformed input error, got: %v", tc.in, err)
			}
			var pe *model.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected a ParseError, got %T", err)
			}
			if pe.Field != tc.field {
				t.Errorf("expected field '%s', got '%s'", tc.field, pe.Field)
			}
		})
	}
}

func TestReadSummaryCSV(t *testing.T) {
	in := `Team1,Team1 Score,Team2,Team2 Score,Winner
Hail Marys,120.5,Blitz Brigade,100,Hail Marys
 Red Zone ,90,Pick Six,110.25,Pick Six
`
	got, err := loader.ReadSummaryCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []model.MatchupSummary{
		{Team1: "Hail Marys", Team1Score: 120.5, Team2: "Blitz Brigade", Team2Score: 100},
		{Team1: "Red Zone", Team1Score: 90, Team2: "Pick Six", Team2Score: 110.25},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestReadSummaryCSV_errors(t *testing.T) {
	tests := []string{
		"",
		"Team1,Team1 Score,Team2,Team2 Score\n",
		"Team1,Team1 Score,Team2\nA,1,B\n",
		"Team1,Team1 Score,Team2,Team2 Score\nA,1,,2\n",
		"Team1,Team1 Score,Team2,Team2 Score\nA,one,B,2\n",
	}

	for _, tc := range tests {
		_, err := loader.ReadSummaryCSV(strings.NewReader(tc))
		if !errors.Is(err, model.ErrMalformedInput) {
			t.Errorf("input: '%s', expected a malformed input error, got: %v", tc, err)
		}
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	err := loader.WriteSummaryCSV(&buf, []model.MatchupSummary{
		{Team1: "A", Team1Score: 100.5, Team2: "B", Team2Score: 100.5},
		{Team1: "C", Team1Score: 90, Team2: "D", Team2Score: 91.25},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Team1,Team1 Score,Team2,Team2 Score,Winner\nA,100.5,B,100.5,A\nC,90,D,91.25,D\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestCSVDir(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteCSVExports(t, dir)
	src := loader.NewCSVDir(dir)
	ctx := context.Background()

	summaries, err := src.LoadMatchupSummary(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(summaries, testutils.Summaries(testutils.Weeks[3])) {
		t.Errorf("unexpected summaries: %+v", summaries)
	}

	tables, err := src.LoadRosterTables(ctx, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(tables, testutils.Tables(testutils.Weeks[3][1])) {
		t.Errorf("unexpected tables: %+v", tables)
	}
}

func TestCSVDir_notFound(t *testing.T) {
	src := loader.NewCSVDir(t.TempDir())

	if _, err := src.LoadMatchupSummary(context.Background(), 1); !errors.Is(err, loader.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if _, err := src.LoadRosterTables(context.Background(), 1, 1); !errors.Is(err, loader.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestCSVDir_malformedNamesWeek(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFile(t, loader.MatchupCSVPath(dir, 7, 3), "Team,Table,Player,Proj,Fan Pts\nA,starting,x,1,zz\n")

	_, err := loader.NewCSVDir(dir).LoadRosterTables(context.Background(), 7, 3)
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got: %v", err)
	}
	if pe.Week != 7 || pe.Matchup != 3 || pe.Team != "A" || pe.Row != 1 {
		t.Errorf("unexpected error location: %+v", pe)
	}
}

func TestCSVDir_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.NewCSVDir(t.TempDir()).LoadMatchupSummary(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestCSVCache(t *testing.T) {
	raw := t.TempDir()
	cache := t.TempDir()
	testutils.WriteHTMLExports(t, raw)

	// Week 1's scoreboard is already cached with a different score.
	testutils.WriteFile(t, loader.SummaryCSVPath(cache, 1),
		"Team1,Team1 Score,Team2,Team2 Score\nHail Marys,1,Blitz Brigade,2\n")

	src := loader.NewCSVCache(yahoo.NewHTMLDir(raw), cache, zap.NewNop().Sugar())
	ctx := context.Background()

	summaries, err := src.LoadMatchupSummary(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Team2Score != 2 {
		t.Errorf("expected the cached scoreboard to be used, got %+v", summaries)
	}

	summaries, err = src.LoadMatchupSummary(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(summaries, testutils.Summaries(testutils.Weeks[2])) {
		t.Errorf("unexpected summaries: %+v", summaries)
	}
	if _, err := os.Stat(loader.SummaryCSVPath(cache, 2)); err != nil {
		t.Errorf("expected week 2's scoreboard to be cached: %v", err)
	}

	tables, err := src.LoadRosterTables(ctx, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cached, err := loader.NewCSVDir(cache).LoadRosterTables(ctx, 2, 1)
	if err != nil {
		t.Fatalf("expected the matchup to be cached: %v", err)
	}
	if !reflect.DeepEqual(tables, cached) {
		t.Errorf("cached tables differ, expected %+v, got %+v", tables, cached)
	}
}
