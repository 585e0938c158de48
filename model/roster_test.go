package model

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
)

var starterPositions = []string{"QB", "WR", "WR", "RB", "RB", "TE", "RB", "WR", "DEF"}

// startingRows builds a starting table with one row per starting slot. The
// projected points are 10 for every player.
func startingRows(pts ...float64) []RosterRow {
	rows := make([]RosterRow, 0, len(pts))
	for i, p := range pts {
		rows = append(rows, RosterRow{
			Descriptor: fmt.Sprintf("Starter %dKC - %s", i, starterPositions[i]),
			Proj:       10,
			FanPts:     p,
		})
	}
	return rows
}

func benchRows(pts ...float64) []RosterRow {
	rows := make([]RosterRow, 0, len(pts))
	for i, p := range pts {
		rows = append(rows, RosterRow{Descriptor: fmt.Sprintf("Bench %dSF - RB", i), Proj: 5, FanPts: p})
	}
	return rows
}

func testRoster(t *testing.T, team string, starters ...float64) *Roster {
	t.Helper()
	r, err := NewRoster(team, startingRows(starters...), benchRows(1, 2, 3, 4, 5, 6, 7, 8))
	if err != nil {
		t.Fatalf("unexpected error building roster: %v", err)
	}
	return r
}

func TestRosterPoints(t *testing.T) {
	r := testRoster(t, "Team A", 20, 10, 11, 12, 13, 8, 9, 7, 6)

	if r.Team() != "Team A" {
		t.Errorf("unexpected team: %s", r.Team())
	}
	if r.StartingPoints() != 96 {
		t.Errorf("expected starting points 96, got %v", r.StartingPoints())
	}
	if r.BenchPoints() != 36 {
		t.Errorf("expected bench points 36, got %v", r.BenchPoints())
	}
	if r.NetPoints() != 6 {
		t.Errorf("expected net points 6, got %v", r.NetPoints())
	}

	tests := map[PointsFilter]float64{
		FILTER_QB:   20,
		FILTER_WR:   21,
		FILTER_RB:   25,
		FILTER_TE:   8,
		FILTER_FLEX: 16,
		FILTER_DEF:  6,
		FILTER_ALL:  96,
	}
	for f, want := range tests {
		if got := r.PositionPoints(f); got != want {
			t.Errorf("%s: expected %v, got %v", f, want, got)
		}
	}

	// Pure derivations: a second call sees the same values.
	if r.StartingPoints() != 96 || r.PositionPoints(FILTER_ALL) != r.StartingPoints() {
		t.Errorf("recomputation changed the result")
	}
	if len(r.Fallbacks()) != 0 {
		t.Errorf("expected no fallbacks, got %v", r.Fallbacks())
	}
}

func TestRosterSlots(t *testing.T) {
	r := testRoster(t, "Team A", 1, 2, 3, 4, 5, 6, 7, 8, 9)

	p, ok := r.Player(SLOT_FLEX2)
	if !ok || p.FanPoints != 8 {
		t.Errorf("expected FLEX2 to score 8, got %v (%v)", p.FanPoints, ok)
	}
	p, ok = r.Player(SLOT_BN8)
	if !ok || p.FanPoints != 8 || p.Team != TEAM_SFO {
		t.Errorf("unexpected BN8 player: %s", p)
	}
	if _, ok := r.Player(Slot("K")); ok {
		t.Errorf("expected unknown slot to be missing")
	}

	starters := r.Starters()
	if len(starters) != 9 || starters[0].Slot != SLOT_QB || starters[8].Slot != SLOT_DEF {
		t.Errorf("unexpected starters: %v", starters)
	}
	if len(r.Bench()) != 8 {
		t.Errorf("expected 8 bench slots, got %d", len(r.Bench()))
	}
}

func TestSlotGroup(t *testing.T) {
	tests := []struct {
		slot     Slot
		group    PointsFilter
		label    string
		starting bool
	}{
		{slot: SLOT_QB, group: FILTER_QB, label: "QB", starting: true},
		{slot: SLOT_WR2, group: FILTER_WR, label: "WR", starting: true},
		{slot: SLOT_FLEX1, group: FILTER_FLEX, label: "W/R/T", starting: true},
		{slot: SLOT_DEF, group: FILTER_DEF, label: "DEF", starting: true},
		{slot: SLOT_BN3, group: "", label: "BN", starting: false},
	}

	for _, tc := range tests {
		if tc.slot.Group() != tc.group || tc.slot.SheetLabel() != tc.label || tc.slot.IsStarting() != tc.starting {
			t.Errorf("%s: unexpected group %s, label %s, starting %v",
				tc.slot, tc.slot.Group(), tc.slot.SheetLabel(), tc.slot.IsStarting())
		}
	}
}

func TestNewRoster_malformed(t *testing.T) {
	full := startingRows(1, 2, 3, 4, 5, 6, 7, 8, 9)
	bench := benchRows(1, 2, 3, 4, 5, 6, 7, 8)

	tests := []struct {
		name     string
		team     string
		starting []RosterRow
		bench    []RosterRow
		table    string
		row      int
	}{
		{name: "empty team", team: " ", starting: full, bench: bench, table: "", row: -1},
		{name: "short starting", team: "A", starting: full[:7], bench: bench, table: "starting", row: 7},
		{name: "short bench", team: "A", starting: full, bench: bench[:5], table: "bench", row: 5},
		{name: "too many starters", team: "A", starting: append(startingRows(1, 2, 3, 4, 5, 6, 7, 8, 9), bench[0]), bench: bench, table: "starting", row: -1},
		{name: "blank descriptor", team: "A", starting: append(startingRows(1, 2), RosterRow{}), bench: bench, table: "starting", row: 2},
	}

	for _, tc := range tests {
		_, err := NewRoster(tc.team, tc.starting, tc.bench)
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%s: expected ErrMalformedInput, got %v", tc.name, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: expected a *ParseError, got %T", tc.name, err)
			continue
		}
		if pe.Table != tc.table || pe.Row != tc.row {
			t.Errorf("%s: expected table '%s' row %d, got '%s' row %d", tc.name, tc.table, tc.row, pe.Table, pe.Row)
		}
	}
}

func TestNewRoster_benchFallback(t *testing.T) {
	starting := startingRows(1, 2, 3, 4, 5, 6, 7)
	bench := benchRows(10, 20, 30, 40, 50, 60, 70, 80, 90)

	r, err := NewRoster("A", starting, bench, WithBenchFallback())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fb := r.Fallbacks()
	if len(fb) != 2 || fb[0] != SLOT_FLEX2 || fb[1] != SLOT_DEF {
		t.Errorf("expected FLEX2 and DEF fallbacks, got %v", fb)
	}
	p, _ := r.Player(SLOT_DEF)
	if p.FanPoints != 90 {
		t.Errorf("expected DEF to use bench row 8 (90 points), got %v", p.FanPoints)
	}
	if r.StartingPoints() != 28+80+90 {
		t.Errorf("unexpected starting points %v", r.StartingPoints())
	}

	// Neither table has a row for DEF.
	_, err = NewRoster("A", starting, bench[:8], WithBenchFallback())
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Row != 8 || pe.Table != "starting" {
		t.Errorf("expected parse error for the DEF slot, got %v", err)
	}
}

func TestParseError(t *testing.T) {
	e := &ParseError{Team: "A", Table: "bench", Row: 3, Field: "player", Err: errors.New("boom")}
	located := e.InWeek(4, 2)

	want := `malformed input (week 4, matchup 2, team "A", bench table, row 3, field player): boom`
	if located.Error() != want {
		t.Errorf("expected '%s', got '%s'", want, located.Error())
	}
	if e.Week != 0 {
		t.Errorf("InWeek must not modify the receiver")
	}
	if again := located.InWeek(9, 9); again.Week != 4 || again.Matchup != 2 {
		t.Errorf("InWeek must keep an existing location, got %d/%d", again.Week, again.Matchup)
	}

	wrapped := errors.Wrap(located, "loading season")
	if !errors.Is(wrapped, ErrMalformedInput) {
		t.Errorf("expected wrapped error to match ErrMalformedInput")
	}
}

func TestUnknownTeamError(t *testing.T) {
	eff := ManagerEfficiency{"A": 0.9}
	if v, err := eff.Lookup("A"); err != nil || v != 0.9 {
		t.Errorf("unexpected lookup result %v, %v", v, err)
	}

	_, err := eff.Lookup("B")
	if !errors.Is(err, ErrUnknownTeam) {
		t.Errorf("expected ErrUnknownTeam, got %v", err)
	}
	var ute *UnknownTeamError
	if !errors.As(err, &ute) || ute.Team != "B" {
		t.Errorf("expected *UnknownTeamError for B, got %v", err)
	}
}
