package model

import (
	"fmt"
	"slices"
	"strings"
)

// LeagueData is the static per-league input that does not come from the
// weekly exports.
type LeagueData struct {
	Name              string
	ManagerEfficiency ManagerEfficiency
	Schedule          Schedule
	Clinched          []string
	Abbrevs           AbbrevSet
}

func (l *LeagueData) IsClinched(team string) bool {
	return slices.Contains(l.Clinched, team)
}

// ManagerEfficiency maps team name to a ratio, usually in [0,1].
type ManagerEfficiency map[string]float64

func (m ManagerEfficiency) Lookup(team string) (float64, error) {
	v, ok := m[team]
	if !ok {
		return 0, &UnknownTeamError{Team: team, Table: "manager efficiency"}
	}
	return v, nil
}

// FormatEfficiency prints a ratio as a percentage, e.g. 0.8712 as "87.12%".
func FormatEfficiency(v float64) string {
	return fmt.Sprintf("%v%%", Round2(v*100))
}

// Game is one future head-to-head pairing.
type Game struct {
	Team1 string `yaml:"team1" json:"team1" validate:"required"`
	Team2 string `yaml:"team2" json:"team2" validate:"required,nefield=Team1"`
}

// ScheduleWeek is one remaining week. Label is free form, e.g. "Week 11".
type ScheduleWeek struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Games []Game `yaml:"games" json:"games" validate:"dive"`
}

// Schedule is the remaining season in play order.
type Schedule []ScheduleWeek

// Teams lists every team named in the schedule, in first seen order.
func (s Schedule) Teams() []string {
	seen := make(map[string]bool)
	var teams []string
	for _, w := range s {
		for _, g := range w.Games {
			for _, t := range []string{g.Team1, g.Team2} {
				if !seen[t] {
					seen[t] = true
					teams = append(teams, t)
				}
			}
		}
	}
	return teams
}

// MatchupSummary is one line of a week's scoreboard summary, used to cross
// check the rosters.
type MatchupSummary struct {
	Team1      string  `json:"team1"`
	Team1Score float64 `json:"team1_score"`
	Team2      string  `json:"team2"`
	Team2Score float64 `json:"team2_score"`
}

// Winner follows the scoreboard: team1 keeps a tie.
func (s MatchupSummary) Winner() string {
	if s.Team2Score > s.Team1Score {
		return s.Team2
	}
	return s.Team1
}

func (s MatchupSummary) String() string {
	return fmt.Sprintf("%s %.2f - %.2f %s", s.Team1, s.Team1Score, s.Team2Score, s.Team2)
}

// SameTeams reports whether the summary describes the given pairing, in
// either order.
func (s MatchupSummary) SameTeams(teams [2]string) bool {
	a, b := strings.TrimSpace(s.Team1), strings.TrimSpace(s.Team2)
	return (a == teams[0] && b == teams[1]) || (a == teams[1] && b == teams[0])
}
