package export_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/mww/fantasy_report/export"
	"github.com/mww/fantasy_report/model"
	"github.com/mww/fantasy_report/testutils"
)

func testReport(t *testing.T) *model.Report {
	t.Helper()
	r, err := testutils.NewSeason(t).Report(testutils.NewLeagueData(), model.DefaultPowerRankingWindow)
	if err != nil {
		t.Fatalf("unexpected error building report: %v", err)
	}
	r.ID = "test-report"
	return r
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("unexpected error opening %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("unexpected error reading %s: %v", path, err)
	}
	return records
}

func TestSummaryTable(t *testing.T) {
	s := &model.SeasonSummary{Rows: []model.SummaryRow{
		{
			Team:         "Hail Marys",
			Badges:       []model.Badge{model.BADGE_CLINCHED, model.BADGE_FIRE},
			PowerRanking: 1,
			Record:       model.Record{Wins: 4},
			PF:           485.004,
			PA:           385,
			H2H:          model.Record{Wins: 19, Losses: 1},
			PaP:          81.255,
			ManagerEff:   0.87123,
			ProjRecord:   model.Record{Wins: 5},
		},
	}}

	var buf bytes.Buffer
	if err := export.SummaryTable(s).WriteCSV(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Team,Power Ranking,Record,PF,PA,H2H,PaP,Manager Eff,Proj Record\n" +
		"Hail Marys -p🔥,1,4-0,485,385,19-1,81.26,87.12%,5-0\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestPositionRanksTable(t *testing.T) {
	table := export.PositionRanksTable([]model.PositionRankRow{
		{Team: "A", QB: 1, RB: 2.5, WR: 3, TE: 4, FLEX: 5, AvgRank: 3.1},
	})

	expectedHeader := []string{"Team", "QB Rank", "RB Rank", "WR Rank", "TE Rank", "FLEX Rank", "Avg Rank"}
	if !reflect.DeepEqual(table.Header, expectedHeader) {
		t.Errorf("expected header %v, got %v", expectedHeader, table.Header)
	}
	expectedRow := []string{"A", "1", "2.5", "3", "4", "5", "3.1"}
	if !reflect.DeepEqual(table.Rows[0], expectedRow) {
		t.Errorf("expected row %v, got %v", expectedRow, table.Rows[0])
	}
}

func TestMatchupSheetTable(t *testing.T) {
	r := testReport(t)
	week, _ := r.Week(1)
	table := export.MatchupSheetTable(week.Matchups[0])

	if table.Header[0] != testutils.TeamHail || table.Header[6] != testutils.TeamBlitz {
		t.Errorf("expected the team names in the header, got %v", table.Header)
	}
	// 9 starters, a total, 8 bench rows and a total.
	if len(table.Rows) != 19 {
		t.Fatalf("expected 19 rows, got %d", len(table.Rows))
	}
	total := table.Rows[9]
	if total[3] != "Total" || total[2] != "120" || total[4] != "100" {
		t.Errorf("unexpected starters total row %v", total)
	}
}

func TestWriteReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := testReport(t)

	if err := export.WriteReport(dir, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{
		"summary.csv", "standings.csv", "power_rankings.csv", "positions.csv", "points_for.csv",
		"ceiling_floor.csv", "week1_advanced.csv", "week4_positions.csv", "week4_matchup_3.csv", "report.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}

	summary := readCSV(t, filepath.Join(dir, "summary.csv"))
	if len(summary) != testutils.LeagueSize+1 {
		t.Fatalf("expected %d summary lines, got %d", testutils.LeagueSize+1, len(summary))
	}
	if !strings.HasPrefix(summary[1][0], testutils.TeamHail+" -p") {
		t.Errorf("expected the clinched leader first, got %v", summary[1])
	}

	points := readCSV(t, filepath.Join(dir, "points_for.csv"))
	if len(points) != testutils.LeagueSize*len(testutils.WeekNumbers)+1 {
		t.Errorf("expected one points line per team and week, got %d", len(points))
	}
}

func TestWriteJSON(t *testing.T) {
	r := testReport(t)

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got model.Report
	if err := sonic.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unexpected error decoding report: %v", err)
	}
	if got.ID != r.ID || got.League != testutils.LeagueName {
		t.Errorf("unexpected report header %s %s", got.ID, got.League)
	}
	if !reflect.DeepEqual(got.Summary.Playoffs, r.Summary.Playoffs) {
		t.Errorf("expected playoffs %v, got %v", r.Summary.Playoffs, got.Summary.Playoffs)
	}
}
