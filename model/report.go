package model

import (
	"strings"
	"time"
)

// StandingsRow is a team's season to date.
type StandingsRow struct {
	Team       string  `json:"team"`
	Record     Record  `json:"record"`
	PF         float64 `json:"pf"`
	PA         float64 `json:"pa"`
	H2H        Record  `json:"h2h"`
	PaP        float64 `json:"pap"`
	ManagerEff float64 `json:"manager_eff"`
}

// Badge is a presentation-only marker attached to a summary row.
type Badge string

const (
	BADGE_CLINCHED Badge = "clinched"
	BADGE_FIRE     Badge = "fire"
	BADGE_COLD     Badge = "cold"
)

var badgeSuffixes = map[Badge]string{
	BADGE_CLINCHED: " -p",
	BADGE_FIRE:     "🔥",
	BADGE_COLD:     "❄️",
}

// badgeOrder is the order suffixes are appended in.
var badgeOrder = []Badge{BADGE_CLINCHED, BADGE_FIRE, BADGE_COLD}

// SummaryRow is one line of the season summary, sorted by PowerRanking.
type SummaryRow struct {
	Team         string  `json:"team"`
	Badges       []Badge `json:"badges,omitempty"`
	PowerRanking int     `json:"power_ranking"`
	Record       Record  `json:"record"`
	PF           float64 `json:"pf"`
	PA           float64 `json:"pa"`
	H2H          Record  `json:"h2h"`
	PaP          float64 `json:"pap"`
	ManagerEff   float64 `json:"manager_eff"`
	ProjRecord   Record  `json:"proj_record"`
}

func (r SummaryRow) HasBadge(b Badge) bool {
	for _, x := range r.Badges {
		if x == b {
			return true
		}
	}
	return false
}

// Label is the team name decorated with its badges, for display only. Never
// use it to look a team up.
func (r SummaryRow) Label() string {
	var sb strings.Builder
	sb.WriteString(r.Team)
	for _, b := range badgeOrder {
		if r.HasBadge(b) {
			sb.WriteString(badgeSuffixes[b])
		}
	}
	return sb.String()
}

type SeasonSummary struct {
	Rows     []SummaryRow `json:"rows"`
	OnFire   []string     `json:"on_fire"`
	Cold     []string     `json:"cold"`
	Playoffs []string     `json:"playoffs"`
}

// Row finds the row for an undecorated team name.
func (s *SeasonSummary) Row(team string) (SummaryRow, bool) {
	for _, r := range s.Rows {
		if r.Team == team {
			return r, true
		}
	}
	return SummaryRow{}, false
}

// WeekAdvancedRow is one line of a week's advanced table.
type WeekAdvancedRow struct {
	Team       string  `json:"team"`
	PF         float64 `json:"pf"`
	H2H        Record  `json:"h2h"`
	ManagerEff float64 `json:"manager_eff"`
}

// MatchupSheet is a matchup laid out for export.
type MatchupSheet struct {
	Index int        `json:"index"`
	Team1 string     `json:"team1"`
	Team2 string     `json:"team2"`
	Rows  []SheetRow `json:"rows"`
}

type WeekReport struct {
	Week      int               `json:"week"`
	Winners   []string          `json:"winners"`
	Advanced  []WeekAdvancedRow `json:"advanced"`
	Positions []PositionRankRow `json:"positions"`
	Matchups  []MatchupSheet    `json:"matchups"`
}

// Report is everything built from one season run. It is never modified after
// it is built.
type Report struct {
	ID            string            `json:"id"`
	League        string            `json:"league,omitempty"`
	Generated     time.Time         `json:"generated"`
	Weeks         []int             `json:"weeks"`
	SkippedWeeks  []int             `json:"skipped_weeks,omitempty"`
	Summary       *SeasonSummary    `json:"summary"`
	Standings     []StandingsRow    `json:"standings"`
	PowerRankings []PowerRankingRow `json:"power_rankings"`
	Positions     []PositionRankRow `json:"positions"`
	PointsFor     []TeamWeekPoints  `json:"points_for"`
	CeilingFloor  []CeilingFloorRow `json:"ceiling_floor"`
	WeekReports   []WeekReport      `json:"week_reports"`
}

// Week finds the report for a week number.
func (r *Report) Week(week int) (*WeekReport, bool) {
	for i := range r.WeekReports {
		if r.WeekReports[i].Week == week {
			return &r.WeekReports[i], true
		}
	}
	return nil, false
}
