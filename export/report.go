package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
)

// WriteJSON writes the whole report as indented JSON.
func WriteJSON(w io.Writer, r *model.Report) error {
	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Files are the CSV tables of a report keyed by file name.
func Files(r *model.Report) map[string]*Table {
	files := map[string]*Table{
		"standings.csv":      StandingsTable(r.Standings),
		"power_rankings.csv": PowerRankingsTable(r.PowerRankings),
		"positions.csv":      PositionRanksTable(r.Positions),
		"points_for.csv":     PointsForTable(r.PointsFor),
		"ceiling_floor.csv":  CeilingFloorTable(r.CeilingFloor),
	}
	if r.Summary != nil {
		files["summary.csv"] = SummaryTable(r.Summary)
	}
	for _, w := range r.WeekReports {
		files[fmt.Sprintf("week%d_advanced.csv", w.Week)] = WeekAdvancedTable(w.Advanced)
		files[fmt.Sprintf("week%d_positions.csv", w.Week)] = PositionRanksTable(w.Positions)
		for _, s := range w.Matchups {
			files[fmt.Sprintf("week%d_matchup_%d.csv", w.Week, s.Index)] = MatchupSheetTable(s)
		}
	}
	return files
}

// WriteReport writes every CSV table and report.json into dir, replacing
// earlier outputs.
func WriteReport(dir string, r *model.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	for name, t := range Files(r) {
		if err := writeFile(filepath.Join(dir, name), t.WriteCSV); err != nil {
			return err
		}
	}
	return writeFile(filepath.Join(dir, "report.json"), func(w io.Writer) error {
		return WriteJSON(w, r)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
