// Package export lays report tables out for files and HTTP responses.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mww/fantasy_report/model"
)

// Table is a header plus string rows, ready for CSV.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func num(v float64) string {
	return strconv.FormatFloat(model.Round2(v), 'f', -1, 64)
}

func SummaryTable(s *model.SeasonSummary) *Table {
	t := &Table{Header: []string{"Team", "Power Ranking", "Record", "PF", "PA", "H2H", "PaP", "Manager Eff", "Proj Record"}}
	for _, r := range s.Rows {
		t.Rows = append(t.Rows, []string{
			r.Label(),
			strconv.Itoa(r.PowerRanking),
			r.Record.String(),
			num(r.PF),
			num(r.PA),
			r.H2H.String(),
			num(r.PaP),
			model.FormatEfficiency(r.ManagerEff),
			r.ProjRecord.String(),
		})
	}
	return t
}

func StandingsTable(rows []model.StandingsRow) *Table {
	t := &Table{Header: []string{"Team", "Record", "PF", "PA", "H2H", "PaP", "Manager Eff"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Team, r.Record.String(), num(r.PF), num(r.PA), r.H2H.String(), num(r.PaP), model.FormatEfficiency(r.ManagerEff),
		})
	}
	return t
}

func PowerRankingsTable(rows []model.PowerRankingRow) *Table {
	t := &Table{Header: []string{
		"Team", "Power Ranking", "PR Total", "PF", "Ceiling", "Floor", "H2H Wins",
		"PF Score", "Ceiling Score", "Floor Score", "H2H Score",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Team, strconv.Itoa(r.Rank), num(r.Total), num(r.PF), num(r.Ceiling), num(r.Floor), strconv.Itoa(r.H2HWins),
			num(r.PFScore), num(r.CeilingScore), num(r.FloorScore), num(r.H2HScore),
		})
	}
	return t
}

// PositionRanksTable works for both the season and the weekly position ranks.
func PositionRanksTable(rows []model.PositionRankRow) *Table {
	t := &Table{Header: []string{"Team"}}
	for _, f := range model.RankedFilters {
		t.Header = append(t.Header, string(f)+" Rank")
	}
	t.Header = append(t.Header, "Avg Rank")

	for _, r := range rows {
		row := []string{r.Team}
		for _, f := range model.RankedFilters {
			row = append(row, num(r.Rank(f)))
		}
		t.Rows = append(t.Rows, append(row, num(r.AvgRank)))
	}
	return t
}

func PointsForTable(rows []model.TeamWeekPoints) *Table {
	t := &Table{Header: []string{"Team", "Week", "Points"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Team, strconv.Itoa(r.Week), num(r.Points)})
	}
	return t
}

func CeilingFloorTable(rows []model.CeilingFloorRow) *Table {
	t := &Table{Header: []string{"Team", "Ceiling", "Floor"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Team, num(r.Ceiling), num(r.Floor)})
	}
	return t
}

func WeekAdvancedTable(rows []model.WeekAdvancedRow) *Table {
	t := &Table{Header: []string{"Team", "PF", "H2H", "Manager Eff"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Team, num(r.PF), r.H2H.String(), model.FormatEfficiency(r.ManagerEff)})
	}
	return t
}

func MatchupSheetTable(s model.MatchupSheet) *Table {
	t := &Table{Header: []string{s.Team1, "Pos", "Fan Pts", "Roster Pos", "Fan Pts", "Pos", s.Team2}}
	for _, r := range s.Rows {
		t.Rows = append(t.Rows, []string{
			r.Player1, r.Position1, num(r.FanPts1), r.RosterPosition, num(r.FanPts2), r.Position2, r.Player2,
		})
	}
	return t
}

// TeamsTable is a single column of team names, such as the playoff field.
func TeamsTable(teams []string) *Table {
	t := &Table{Header: []string{"Team"}}
	for _, team := range teams {
		t.Rows = append(t.Rows, []string{team})
	}
	return t
}
