package testutils

import (
	"fmt"
	"testing"

	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/model"
	"github.com/mww/fantasy_report/season"
)

const LeagueName = "Test League"

// The six teams of the test league.
const (
	TeamHail   = "Hail Marys"
	TeamBlitz  = "Blitz Brigade"
	TeamRed    = "Red Zone"
	TeamPick   = "Pick Six"
	TeamAudi   = "Audibles"
	TeamHurry  = "Hurry Up"
	LeagueSize = 6
)

// Game is one played matchup with the starting totals of both teams.
type Game struct {
	Team1  string
	Score1 float64
	Team2  string
	Score2 float64
}

// Weeks is a four week season of the test league.
//
//	team        w1   w2   w3   w4   record
//	Hail Marys  120  130  110  125  4-0
//	Blitz       100  105   95  100  1-3
//	Red Zone     90   95  100  100  2-2
//	Pick Six    110   85  100   70  1-3
//	Audibles     80  100   60   90  1-3
//	Hurry Up     70   90  120   95  3-1
//
// Blitz and Red Zone tie in week 4; Red Zone is team2 and takes the win.
var Weeks = map[int][]Game{
	1: {{TeamHail, 120, TeamBlitz, 100}, {TeamRed, 90, TeamPick, 110}, {TeamAudi, 80, TeamHurry, 70}},
	2: {{TeamHail, 130, TeamRed, 95}, {TeamBlitz, 105, TeamAudi, 100}, {TeamPick, 85, TeamHurry, 90}},
	3: {{TeamHail, 110, TeamPick, 100}, {TeamBlitz, 95, TeamHurry, 120}, {TeamRed, 100, TeamAudi, 60}},
	4: {{TeamHail, 125, TeamAudi, 90}, {TeamBlitz, 100, TeamRed, 100}, {TeamPick, 70, TeamHurry, 95}},
}

// WeekNumbers are the keys of Weeks in order.
var WeekNumbers = []int{1, 2, 3, 4}

var starterDescriptors = []string{
	"Josh AllenBUF - QB",
	"Justin JeffersonMIN - WR",
	"Amon-Ra St. BrownDET - WR",
	"Bijan RobinsonATL - RB",
	"Saquon BarkleyPHI - RB",
	"Travis KelceKC - TE",
	"Puka NacuaLAR - WR",
	"Derrick HenryBAL - RB",
	"Baltimore - DEF",
}

const (
	starterPoints = 6
	starterProj   = 10
	benchPoints   = 3
	benchProj     = 5
)

// RosterRows builds a lineup whose starting total is score. Every starter but
// the QB scores 6 and the QB makes up the rest; every starter is projected 10.
func RosterRows(team string, score float64) loader.TeamTables {
	starting := make([]model.RosterRow, 0, len(starterDescriptors))
	for i, d := range starterDescriptors {
		pts := float64(starterPoints)
		if i == 0 {
			pts = score - starterPoints*float64(len(starterDescriptors)-1)
		}
		starting = append(starting, model.RosterRow{Descriptor: d, Proj: starterProj, FanPts: pts})
	}

	bench := make([]model.RosterRow, 0, 8)
	for i := 0; i < 8; i++ {
		bench = append(bench, model.RosterRow{
			Descriptor: fmt.Sprintf("Reserve %dNYJ - WR", i+1),
			Proj:       benchProj,
			FanPts:     benchPoints,
		})
	}
	return loader.TeamTables{Team: team, Starting: starting, Bench: bench}
}

func Tables(g Game) *loader.MatchupTables {
	return &loader.MatchupTables{Team1: RosterRows(g.Team1, g.Score1), Team2: RosterRows(g.Team2, g.Score2)}
}

func Summaries(games []Game) []model.MatchupSummary {
	res := make([]model.MatchupSummary, 0, len(games))
	for _, g := range games {
		res = append(res, model.MatchupSummary{Team1: g.Team1, Team1Score: g.Score1, Team2: g.Team2, Team2Score: g.Score2})
	}
	return res
}

// NewSeason builds the Weeks season directly, without any exports.
func NewSeason(t *testing.T) *season.Season {
	t.Helper()
	weeks := make([]*season.Week, 0, len(WeekNumbers))
	for _, n := range WeekNumbers {
		matchups := make([]*model.Matchup, 0, len(Weeks[n]))
		for _, g := range Weeks[n] {
			tables := Tables(g)
			team1, err := model.NewRoster(g.Team1, tables.Team1.Starting, tables.Team1.Bench)
			if err != nil {
				t.Fatalf("unexpected error building roster: %v", err)
			}
			team2, err := model.NewRoster(g.Team2, tables.Team2.Starting, tables.Team2.Bench)
			if err != nil {
				t.Fatalf("unexpected error building roster: %v", err)
			}
			m, err := model.NewMatchup(team1, team2)
			if err != nil {
				t.Fatalf("unexpected error building matchup: %v", err)
			}
			matchups = append(matchups, m)
		}
		w, err := season.NewWeek(n, matchups)
		if err != nil {
			t.Fatalf("unexpected error building week: %v", err)
		}
		weeks = append(weeks, w)
	}

	s, err := season.New(weeks)
	if err != nil {
		t.Fatalf("unexpected error building season: %v", err)
	}
	return s
}

// NewLeagueData is the static league input matching Weeks, with one week of
// schedule left.
func NewLeagueData() *model.LeagueData {
	return &model.LeagueData{
		Name: LeagueName,
		ManagerEfficiency: model.ManagerEfficiency{
			TeamHail: 0.9, TeamBlitz: 0.85, TeamRed: 0.8, TeamPick: 0.75, TeamAudi: 0.7, TeamHurry: 0.65,
		},
		Schedule: model.Schedule{
			{Label: "Week 5", Games: []model.Game{
				{Team1: TeamHail, Team2: TeamHurry},
				{Team1: TeamBlitz, Team2: TeamRed},
				{Team1: TeamPick, Team2: TeamAudi},
			}},
		},
		Clinched: []string{TeamHail},
		Abbrevs:  model.DefaultAbbrevs(),
	}
}

// LeagueYAML is NewLeagueData as a league data file.
const LeagueYAML = `name: Test League
manager_efficiency:
  Hail Marys: 0.9
  Blitz Brigade: 0.85
  Red Zone: 0.8
  Pick Six: 0.75
  Audibles: 0.7
  Hurry Up: 0.65
remaining_schedule:
  - label: Week 5
    games:
      - team1: Hail Marys
        team2: Hurry Up
      - team1: Blitz Brigade
        team2: Red Zone
      - team1: Pick Six
        team2: Audibles
clinched:
  - Hail Marys
`
