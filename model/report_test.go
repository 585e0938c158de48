package model

import "testing"

func TestSummaryRowLabel(t *testing.T) {
	tests := []struct {
		badges []Badge
		want   string
	}{
		{badges: nil, want: "Gridiron Gang"},
		{badges: []Badge{BADGE_FIRE}, want: "Gridiron Gang🔥"},
		{badges: []Badge{BADGE_COLD}, want: "Gridiron Gang❄️"},
		{badges: []Badge{BADGE_FIRE, BADGE_CLINCHED}, want: "Gridiron Gang -p🔥"},
	}

	for _, tc := range tests {
		r := SummaryRow{Team: "Gridiron Gang", Badges: tc.badges}
		if got := r.Label(); got != tc.want {
			t.Errorf("badges %v: expected '%s', got '%s'", tc.badges, tc.want, got)
		}
		if r.Team != "Gridiron Gang" {
			t.Errorf("Label changed the team name")
		}
	}
}

func TestSeasonSummaryRow(t *testing.T) {
	s := &SeasonSummary{Rows: []SummaryRow{{Team: "A", PowerRanking: 2}, {Team: "B", PowerRanking: 1, Badges: []Badge{BADGE_FIRE}}}}

	r, ok := s.Row("B")
	if !ok || r.PowerRanking != 1 {
		t.Errorf("expected to find B, got %+v (%v)", r, ok)
	}
	if _, ok := s.Row("B🔥"); ok {
		t.Errorf("decorated labels must not resolve to a team")
	}
}

func TestReportWeek(t *testing.T) {
	r := &Report{WeekReports: []WeekReport{{Week: 1}, {Week: 3}}}
	if w, ok := r.Week(3); !ok || w.Week != 3 {
		t.Errorf("expected week 3")
	}
	if _, ok := r.Week(2); ok {
		t.Errorf("week 2 was skipped and should be missing")
	}
}

func TestSchedule(t *testing.T) {
	s := Schedule{
		{Label: "Week 11", Games: []Game{{Team1: "A", Team2: "B"}, {Team1: "C", Team2: "D"}}},
		{Label: "Week 12", Games: []Game{{Team1: "A", Team2: "C"}, {Team1: "E", Team2: "B"}}},
	}
	teams := s.Teams()
	want := []string{"A", "B", "C", "D", "E"}
	if len(teams) != len(want) {
		t.Fatalf("expected %v, got %v", want, teams)
	}
	for i := range want {
		if teams[i] != want[i] {
			t.Errorf("expected %v, got %v", want, teams)
		}
	}

	l := &LeagueData{Clinched: []string{"A"}}
	if !l.IsClinched("A") || l.IsClinched("B") {
		t.Errorf("IsClinched returned the wrong result")
	}
}
