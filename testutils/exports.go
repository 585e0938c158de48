package testutils

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/model"
)

// WriteCSVExports writes Weeks to dir as a converted CSV cache.
func WriteCSVExports(t *testing.T, dir string) {
	t.Helper()
	for _, n := range WeekNumbers {
		mkdir(t, loader.WeekDir(dir, n))

		f := create(t, loader.SummaryCSVPath(dir, n))
		if err := loader.WriteSummaryCSV(f, Summaries(Weeks[n])); err != nil {
			t.Fatalf("unexpected error writing summary: %v", err)
		}
		f.Close()

		for i, g := range Weeks[n] {
			f := create(t, loader.MatchupCSVPath(dir, n, i+1))
			if err := loader.WriteRosterCSV(f, Tables(g)); err != nil {
				t.Fatalf("unexpected error writing matchup: %v", err)
			}
			f.Close()
		}
	}
}

// WriteHTMLExports writes Weeks to dir as saved provider pages.
func WriteHTMLExports(t *testing.T, dir string) {
	t.Helper()
	for _, n := range WeekNumbers {
		weekDir := loader.WeekDir(dir, n)
		mkdir(t, weekDir)
		WriteFile(t, filepath.Join(weekDir, fmt.Sprintf("week%d_matchups.html", n)), ScoreboardHTML(Weeks[n]))
		for i, g := range Weeks[n] {
			WriteFile(t, filepath.Join(weekDir, fmt.Sprintf("matchup_%d.html", i+1)), MatchupHTML(Tables(g)))
		}
	}
}

func WriteFile(t *testing.T, path, contents string) {
	t.Helper()
	mkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error writing %s: %v", path, err)
	}
}

func mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("unexpected error creating %s: %v", dir, err)
	}
}

func create(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("unexpected error creating %s: %v", path, err)
	}
	return f
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// MatchupHTML renders a matchup detail page the way the provider lays it out:
// the team names sit in the 7th and 20th div of the matchup header, and the
// starting and bench tables are the 2nd and 3rd tables of the page, with
// team1's columns on the left and team2's mirrored on the right.
func MatchupHTML(t *loader.MatchupTables) string {
	var b strings.Builder
	b.WriteString("<html><body>\n<section id=\"matchup-header\">\n")
	for i := 0; i < 20; i++ {
		switch i {
		case 6:
			fmt.Fprintf(&b, "<div>%s</div>\n", html.EscapeString(t.Team1.Team))
		case 19:
			fmt.Fprintf(&b, "<div>%s</div>\n", html.EscapeString(t.Team2.Team))
		default:
			b.WriteString("<div></div>\n")
		}
	}
	b.WriteString("</section>\n")
	b.WriteString("<table><tr><td>Week stats</td></tr></table>\n")
	writeRosterTable(&b, t.Team1.Starting, t.Team2.Starting)
	writeRosterTable(&b, t.Team1.Bench, t.Team2.Bench)
	b.WriteString("</body></html>\n")
	return b.String()
}

func writeRosterTable(b *strings.Builder, team1, team2 []model.RosterRow) {
	b.WriteString("<table>\n<thead><tr>")
	for _, h := range []string{"Player", "Proj", "Fan Pts", "Pos", "Fan Pts", "Proj", "Player"} {
		fmt.Fprintf(b, "<th>%s</th>", h)
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for i := 0; i < max(len(team1), len(team2)); i++ {
		var r1, r2 model.RosterRow
		if i < len(team1) {
			r1 = team1[i]
		}
		if i < len(team2) {
			r2 = team2[i]
		}
		fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>-</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(r1.Descriptor), score(r1.Proj), score(r1.FanPts),
			score(r2.FanPts), score(r2.Proj), html.EscapeString(r2.Descriptor))
	}
	b.WriteString("</tbody>\n</table>\n")
}

// ScoreboardHTML renders a week's scoreboard: one list item per matchup with
// the team names in its 2nd and 5th links and the scores in its 12th and 19th
// divs.
func ScoreboardHTML(games []Game) string {
	var b strings.Builder
	b.WriteString("<html><body>\n<ul>\n")
	for _, g := range games {
		b.WriteString("<li>")
		for i := 0; i < 5; i++ {
			switch i {
			case 1:
				fmt.Fprintf(&b, "<a href=\"#\">%s</a>", html.EscapeString(g.Team1))
			case 4:
				fmt.Fprintf(&b, "<a href=\"#\">%s</a>", html.EscapeString(g.Team2))
			default:
				b.WriteString("<a href=\"#\"></a>")
			}
		}
		for i := 0; i < 19; i++ {
			switch i {
			case 11:
				fmt.Fprintf(&b, "<div>%s</div>", score(g.Score1))
			case 18:
				fmt.Fprintf(&b, "<div>%s</div>", score(g.Score2))
			default:
				b.WriteString("<div></div>")
			}
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n</body></html>\n")
	return b.String()
}
