// Package yahoo reads the matchup pages saved from the Yahoo fantasy site.
package yahoo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/model"
)

// Positions of the elements the pages are read from. The pages carry no
// stable ids apart from the matchup header, so these are element indexes.
const (
	headerTeam1Div = 6
	headerTeam2Div = 19

	startingTableIdx = 1
	benchTableIdx    = 2

	summaryTeam1Link  = 1
	summaryTeam1Score = 11
	summaryTeam2Link  = 4
	summaryTeam2Score = 18
)

// HTMLDir reads saved pages laid out as
//
//	<root>/week<N>/week<N>_matchups.html  the league scoreboard
//	<root>/week<N>/matchup_<i>.html       one matchup's detail page
type HTMLDir struct {
	root string
}

func NewHTMLDir(root string) *HTMLDir {
	return &HTMLDir{root: root}
}

func (d *HTMLDir) summaryPath(week int) string {
	return filepath.Join(loader.WeekDir(d.root, week), fmt.Sprintf("week%d_matchups.html", week))
}

func (d *HTMLDir) matchupPath(week, index int) string {
	return filepath.Join(loader.WeekDir(d.root, week), fmt.Sprintf("matchup_%d.html", index))
}

func (d *HTMLDir) LoadRosterTables(ctx context.Context, week, index int) (*loader.MatchupTables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := openDocument(d.matchupPath(week, index))
	if err != nil {
		return nil, err
	}

	t, err := parseMatchup(doc)
	if err != nil {
		var pe *model.ParseError
		if errors.As(err, &pe) {
			return nil, pe.InWeek(week, index)
		}
		return nil, err
	}
	return t, nil
}

func (d *HTMLDir) LoadMatchupSummary(ctx context.Context, week int) ([]model.MatchupSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := openDocument(d.summaryPath(week))
	if err != nil {
		return nil, err
	}

	res, err := parseSummary(doc)
	if err != nil {
		var pe *model.ParseError
		if errors.As(err, &pe) {
			return nil, pe.InWeek(week, 0)
		}
		return nil, err
	}
	return res, nil
}

func openDocument(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(loader.ErrNotFound, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	return readDocument(f, path)
}

func readDocument(r io.Reader, name string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", name)
	}
	return doc, nil
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func parseMatchup(doc *goquery.Document) (*loader.MatchupTables, error) {
	header := doc.Find("section#matchup-header").First()
	if header.Length() == 0 {
		return nil, &model.ParseError{Row: -1, Field: "matchup-header", Err: errors.New("matchup header not found")}
	}
	divs := header.Find("div")
	team1 := text(divs.Eq(headerTeam1Div))
	team2 := text(divs.Eq(headerTeam2Div))
	if team1 == "" || team2 == "" {
		return nil, &model.ParseError{Row: -1, Field: "matchup-header",
			Err: errors.Newf("team names not found (found %d header divs)", divs.Length())}
	}

	tables := doc.Find("table")
	if tables.Length() <= benchTableIdx {
		return nil, &model.ParseError{Row: -1, Err: errors.Newf("expected at least %d tables, found %d", benchTableIdx+1, tables.Length())}
	}

	starting, err := parseRosterTable(tables.Eq(startingTableIdx), loader.TableStarting)
	if err != nil {
		return nil, err
	}
	bench, err := parseRosterTable(tables.Eq(benchTableIdx), loader.TableBench)
	if err != nil {
		return nil, err
	}

	return &loader.MatchupTables{
		Team1: loader.TeamTables{Team: team1, Starting: starting[0], Bench: bench[0]},
		Team2: loader.TeamTables{Team: team2, Starting: starting[1], Bench: bench[1]},
	}, nil
}

type rosterColumns struct {
	player, proj, fanPts int
}

// parseRosterTable reads both teams' rows of a side-by-side roster table.
// The first Player/Proj/Fan Pts columns belong to team1, the second set to
// team2.
func parseRosterTable(table *goquery.Selection, name string) ([2][]model.RosterRow, error) {
	var res [2][]model.RosterRow

	headerRow := table.Find("thead tr").Last()
	if headerRow.Length() == 0 {
		headerRow = table.Find("tr").First()
	}

	cols := [2]rosterColumns{{-1, -1, -1}, {-1, -1, -1}}
	seen := map[string]int{}
	headerRow.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		h := strings.ToLower(text(cell))
		side := seen[h]
		if side > 1 {
			return
		}
		switch h {
		case "player":
			cols[side].player = i
		case "proj":
			cols[side].proj = i
		case "fan pts":
			cols[side].fanPts = i
		default:
			return
		}
		seen[h]++
	})
	for side, c := range cols {
		if c.player < 0 || c.proj < 0 || c.fanPts < 0 {
			return res, &model.ParseError{Table: name, Row: -1, Field: "header",
				Err: errors.Newf("missing Player/Proj/Fan Pts columns for team %d", side+1)}
		}
	}

	var parseErr error
	table.Find("tbody tr").EachWithBreak(func(row int, tr *goquery.Selection) bool {
		cells := tr.Find("th, td")
		if cells.Length() == 0 {
			return true
		}
		for side, c := range cols {
			r, err := rosterRow(cells, c)
			if err != nil {
				parseErr = &model.ParseError{Table: name, Row: row, Field: "score", Err: errors.Wrapf(err, "team %d", side+1)}
				return false
			}
			res[side] = append(res[side], r)
		}
		return true
	})
	if parseErr != nil {
		return res, parseErr
	}
	return res, nil
}

func rosterRow(cells *goquery.Selection, c rosterColumns) (model.RosterRow, error) {
	proj, err := model.ParseScore(text(cells.Eq(c.proj)))
	if err != nil {
		return model.RosterRow{}, err
	}
	fan, err := model.ParseScore(text(cells.Eq(c.fanPts)))
	if err != nil {
		return model.RosterRow{}, err
	}
	return model.RosterRow{Descriptor: text(cells.Eq(c.player)), Proj: proj, FanPts: fan}, nil
}

func parseSummary(doc *goquery.Document) ([]model.MatchupSummary, error) {
	var res []model.MatchupSummary
	var parseErr error

	doc.Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		links := li.Find("a")
		divs := li.Find("div")
		s := model.MatchupSummary{
			Team1: text(links.Eq(summaryTeam1Link)),
			Team2: text(links.Eq(summaryTeam2Link)),
		}
		if s.Team1 == "" || s.Team2 == "" {
			parseErr = &model.ParseError{Table: "summary", Row: i, Field: "team",
				Err: errors.Newf("team names not found (found %d links)", links.Length())}
			return false
		}

		var err error
		if s.Team1Score, err = model.ParseScore(text(divs.Eq(summaryTeam1Score))); err != nil {
			parseErr = &model.ParseError{Table: "summary", Team: s.Team1, Row: i, Field: "score", Err: err}
			return false
		}
		if s.Team2Score, err = model.ParseScore(text(divs.Eq(summaryTeam2Score))); err != nil {
			parseErr = &model.ParseError{Table: "summary", Team: s.Team2, Row: i, Field: "score", Err: err}
			return false
		}
		res = append(res, s)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if len(res) == 0 {
		return nil, &model.ParseError{Table: "summary", Row: -1, Err: errors.New("no matchups")}
	}
	return res, nil
}
