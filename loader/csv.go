package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
)

const (
	TableStarting = "starting"
	TableBench    = "bench"
)

// WeekDir is the directory holding a week's exports.
func WeekDir(root string, week int) string {
	return filepath.Join(root, fmt.Sprintf("week%d", week))
}

// SummaryCSVPath is the converted scoreboard of a week.
func SummaryCSVPath(root string, week int) string {
	return filepath.Join(WeekDir(root, week), "matchup.csv")
}

// MatchupCSVPath is the converted detail export of one matchup.
func MatchupCSVPath(root string, week, index int) string {
	return filepath.Join(WeekDir(root, week), fmt.Sprintf("matchup_%d.csv", index))
}

// CSVDir reads the converted CSV cache:
//
//	<root>/week<N>/matchup.csv      Team1,Team1 Score,Team2,Team2 Score[,Winner]
//	<root>/week<N>/matchup_<i>.csv  Team,Table,Player,Proj,Fan Pts
//
// Columns are found by header name, so extra columns (such as an index) are
// ignored. Roster rows must be in slot order within each team and table.
type CSVDir struct {
	root string
}

func NewCSVDir(root string) *CSVDir {
	return &CSVDir{root: root}
}

func (d *CSVDir) Root() string {
	return d.root
}

func (d *CSVDir) LoadRosterTables(ctx context.Context, week, index int) (*MatchupTables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := MatchupCSVPath(d.root, week, index)
	f, err := openExport(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tables, err := ReadRosterCSV(f)
	if err != nil {
		var pe *model.ParseError
		if errors.As(err, &pe) {
			return nil, pe.InWeek(week, index)
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return tables, nil
}

func (d *CSVDir) LoadMatchupSummary(ctx context.Context, week int) ([]model.MatchupSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := SummaryCSVPath(d.root, week)
	f, err := openExport(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := ReadSummaryCSV(f)
	if err != nil {
		var pe *model.ParseError
		if errors.As(err, &pe) {
			return nil, pe.InWeek(week, 0)
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return res, nil
}

func openExport(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return f, nil
}

// headerIndex maps the wanted column names (lower case) to their index in
// the header. Every wanted column must be present.
func headerIndex(header []string, table string, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, n := range names {
			if _, seen := idx[n]; !seen && h == n {
				idx[n] = i
			}
		}
	}

	var missing []string
	for _, n := range names {
		if _, ok := idx[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, &model.ParseError{Table: table, Row: -1, Field: strings.Join(missing, ","),
			Err: errors.Newf("missing required columns in header %v", header)}
	}
	return idx, nil
}

// ReadRosterCSV parses a matchup detail export. The first team seen is Team1.
func ReadRosterCSV(r io.Reader) (*MatchupTables, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &model.ParseError{Row: -1, Err: errors.Wrap(err, "reading header")}
	}
	idx, err := headerIndex(header, "", "team", "table", "player", "proj", "fan pts")
	if err != nil {
		return nil, err
	}

	var sides []*TeamTables
	side := func(team string) (*TeamTables, error) {
		for _, s := range sides {
			if s.Team == team {
				return s, nil
			}
		}
		if len(sides) == 2 {
			return nil, errors.Newf("a third team %q in a matchup export", team)
		}
		s := &TeamTables{Team: team}
		sides = append(sides, s)
		return s, nil
	}

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &model.ParseError{Row: line, Err: err}
		}
		cell := func(name string) string {
			if i := idx[name]; i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}

		team := cell("team")
		if team == "" {
			return nil, &model.ParseError{Row: line, Field: "team", Err: errors.New("empty team name")}
		}
		s, err := side(team)
		if err != nil {
			return nil, &model.ParseError{Team: team, Row: line, Field: "team", Err: err}
		}

		table := strings.ToLower(cell("table"))
		proj, err := model.ParseScore(cell("proj"))
		if err != nil {
			return nil, &model.ParseError{Team: team, Table: table, Row: line, Field: "proj", Err: err}
		}
		fan, err := model.ParseScore(cell("fan pts"))
		if err != nil {
			return nil, &model.ParseError{Team: team, Table: table, Row: line, Field: "fan pts", Err: err}
		}
		row := model.RosterRow{Descriptor: cell("player"), Proj: proj, FanPts: fan}

		switch table {
		case TableStarting:
			s.Starting = append(s.Starting, row)
		case TableBench:
			s.Bench = append(s.Bench, row)
		default:
			return nil, &model.ParseError{Team: team, Row: line, Field: "table",
				Err: errors.Newf("unknown table %q", table)}
		}
	}

	if len(sides) != 2 {
		return nil, &model.ParseError{Row: -1, Err: errors.Newf("expected 2 teams, found %d", len(sides))}
	}
	return &MatchupTables{Team1: *sides[0], Team2: *sides[1]}, nil
}

// ReadSummaryCSV parses a week's scoreboard.
func ReadSummaryCSV(r io.Reader) ([]model.MatchupSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &model.ParseError{Table: "summary", Row: -1, Err: errors.Wrap(err, "reading header")}
	}
	idx, err := headerIndex(header, "summary", "team1", "team1 score", "team2", "team2 score")
	if err != nil {
		return nil, err
	}

	var res []model.MatchupSummary
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &model.ParseError{Table: "summary", Row: line, Err: err}
		}
		cell := func(name string) string {
			if i := idx[name]; i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}

		s := model.MatchupSummary{Team1: cell("team1"), Team2: cell("team2")}
		if s.Team1 == "" || s.Team2 == "" {
			return nil, &model.ParseError{Table: "summary", Row: line, Field: "team", Err: errors.New("empty team name")}
		}
		if s.Team1Score, err = model.ParseScore(cell("team1 score")); err != nil {
			return nil, &model.ParseError{Table: "summary", Team: s.Team1, Row: line, Field: "team1 score", Err: err}
		}
		if s.Team2Score, err = model.ParseScore(cell("team2 score")); err != nil {
			return nil, &model.ParseError{Table: "summary", Team: s.Team2, Row: line, Field: "team2 score", Err: err}
		}
		res = append(res, s)
	}

	if len(res) == 0 {
		return nil, &model.ParseError{Table: "summary", Row: -1, Err: errors.New("no matchups")}
	}
	return res, nil
}

// WriteRosterCSV writes a matchup detail export in the layout ReadRosterCSV
// reads.
func WriteRosterCSV(w io.Writer, t *MatchupTables) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Team", "Table", "Player", "Proj", "Fan Pts"}); err != nil {
		return err
	}
	for _, side := range []TeamTables{t.Team1, t.Team2} {
		for _, table := range []struct {
			name string
			rows []model.RosterRow
		}{{TableStarting, side.Starting}, {TableBench, side.Bench}} {
			for _, r := range table.rows {
				err := cw.Write([]string{side.Team, table.name, r.Descriptor, formatScore(r.Proj), formatScore(r.FanPts)})
				if err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes a week's scoreboard in the layout ReadSummaryCSV
// reads, with the scoreboard winner as an extra column.
func WriteSummaryCSV(w io.Writer, summaries []model.MatchupSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Team1", "Team1 Score", "Team2", "Team2 Score", "Winner"}); err != nil {
		return err
	}
	for _, s := range summaries {
		err := cw.Write([]string{s.Team1, formatScore(s.Team1Score), s.Team2, formatScore(s.Team2Score), s.Winner()})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
