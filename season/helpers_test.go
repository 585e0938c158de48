package season

import (
	"fmt"
	"testing"

	"github.com/mww/fantasy_report/model"
)

type game struct {
	team1 string
	pts1  float64
	team2 string
	pts2  float64
}

// newTestRoster gives the QB pts-8 points and every other starter 1 point,
// with every starter projected for 1 point.
func newTestRoster(t *testing.T, team string, pts float64) *model.Roster {
	t.Helper()
	positions := []string{"QB", "WR", "WR", "RB", "RB", "TE", "RB", "WR", "DEF"}
	starting := make([]model.RosterRow, 0, 9)
	for i, pos := range positions {
		fan := 1.0
		if i == 0 {
			fan = pts - 8
		}
		starting = append(starting, model.RosterRow{
			Descriptor: fmt.Sprintf("%s Starter %dKC - %s", team, i, pos),
			Proj:       1,
			FanPts:     fan,
		})
	}
	bench := make([]model.RosterRow, 0, 8)
	for i := 0; i < 8; i++ {
		bench = append(bench, model.RosterRow{Descriptor: fmt.Sprintf("%s Bench %dSF - RB", team, i)})
	}

	r, err := model.NewRoster(team, starting, bench)
	if err != nil {
		t.Fatalf("unexpected error building roster: %v", err)
	}
	return r
}

func newTestWeek(t *testing.T, number int, games ...game) *Week {
	t.Helper()
	matchups := make([]*model.Matchup, 0, len(games))
	for _, g := range games {
		m, err := model.NewMatchup(newTestRoster(t, g.team1, g.pts1), newTestRoster(t, g.team2, g.pts2))
		if err != nil {
			t.Fatalf("unexpected error building matchup: %v", err)
		}
		matchups = append(matchups, m)
	}
	w, err := NewWeek(number, matchups)
	if err != nil {
		t.Fatalf("unexpected error building week: %v", err)
	}
	return w
}

// testWeeks is a six team, four week season.
//
//	team  w1   w2   w3   w4   record  all-play wins
//	A     120  130  110  125  4-0     19
//	B     100  105   95  100  1-3     12
//	C      90   95  100  100  2-2      9
//	D     110   85  100   70  1-3      7
//	E      80  100   60   90  1-3      5
//	F      70   90  120   95  3-1      8
//
// B and C tie in week 4; C is team2 and takes the win.
func testWeeks(t *testing.T) []*Week {
	t.Helper()
	return []*Week{
		newTestWeek(t, 1, game{"A", 120, "B", 100}, game{"C", 90, "D", 110}, game{"E", 80, "F", 70}),
		newTestWeek(t, 2, game{"A", 130, "C", 95}, game{"B", 105, "E", 100}, game{"D", 85, "F", 90}),
		newTestWeek(t, 3, game{"A", 110, "D", 100}, game{"B", 95, "F", 120}, game{"C", 100, "E", 60}),
		newTestWeek(t, 4, game{"A", 125, "E", 90}, game{"B", 100, "C", 100}, game{"D", 70, "F", 95}),
	}
}

func testSeason(t *testing.T) *Season {
	t.Helper()
	s, err := New(testWeeks(t))
	if err != nil {
		t.Fatalf("unexpected error building season: %v", err)
	}
	return s
}

func testEfficiency() model.ManagerEfficiency {
	return model.ManagerEfficiency{"A": 0.9, "B": 0.85, "C": 0.8, "D": 0.75, "E": 0.7, "F": 0.65}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
