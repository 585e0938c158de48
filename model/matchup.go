package model

import (
	"github.com/cockroachdb/errors"
)

// Matchup is one head-to-head game of a week.
type Matchup struct {
	team1 *Roster
	team2 *Roster
}

func NewMatchup(team1, team2 *Roster) (*Matchup, error) {
	if team1 == nil || team2 == nil {
		return nil, errors.New("matchup needs two rosters")
	}
	if team1.Team() == team2.Team() {
		return nil, errors.Newf("team %q cannot play itself", team1.Team())
	}
	return &Matchup{team1: team1, team2: team2}, nil
}

func (m *Matchup) Team1() *Roster {
	return m.team1
}

func (m *Matchup) Team2() *Roster {
	return m.team2
}

// Teams returns the two team names, team1 first.
func (m *Matchup) Teams() [2]string {
	return [2]string{m.team1.Team(), m.team2.Team()}
}

func (m *Matchup) HasTeam(team string) bool {
	return m.team1.Team() == team || m.team2.Team() == team
}

// Winner is the team with more starting points. Ties go to team2.
func (m *Matchup) Winner() string {
	if m.team1.StartingPoints() > m.team2.StartingPoints() {
		return m.team1.Team()
	}
	return m.team2.Team()
}

func (m *Matchup) Loser() string {
	if m.Winner() == m.team1.Team() {
		return m.team2.Team()
	}
	return m.team1.Team()
}

// Roster returns the roster of the team and of its opponent.
func (m *Matchup) Roster(team string) (own *Roster, opp *Roster, err error) {
	switch team {
	case m.team1.Team():
		return m.team1, m.team2, nil
	case m.team2.Team():
		return m.team2, m.team1, nil
	}
	return nil, nil, errors.Wrapf(ErrTeamNotInMatchup, "%q", team)
}

func (m *Matchup) PointsFor(team string) (float64, error) {
	own, _, err := m.Roster(team)
	if err != nil {
		return 0, err
	}
	return own.StartingPoints(), nil
}

func (m *Matchup) PointsAgainst(team string) (float64, error) {
	_, opp, err := m.Roster(team)
	if err != nil {
		return 0, err
	}
	return opp.StartingPoints(), nil
}

// PointsAboveProjected is the team's starting lineup net points.
func (m *Matchup) PointsAboveProjected(team string) (float64, error) {
	own, _, err := m.Roster(team)
	if err != nil {
		return 0, err
	}
	return own.NetPoints(), nil
}

// SheetRow is one line of the side-by-side matchup sheet. Total lines have
// empty player names and RosterPosition "Total".
type SheetRow struct {
	Player1        string  `json:"player1"`
	Position1      string  `json:"position1"`
	FanPts1        float64 `json:"fan_pts1"`
	RosterPosition string  `json:"roster_position"`
	FanPts2        float64 `json:"fan_pts2"`
	Position2      string  `json:"position2"`
	Player2        string  `json:"player2"`
}

// Sheet lays both lineups out slot by slot: starters, a starters total, the
// bench, then a bench total.
func (m *Matchup) Sheet() []SheetRow {
	rows := make([]SheetRow, 0, len(StartingSlots)+len(BenchSlots)+2)
	add := func(a, b []SlotPlayer) {
		for i := range a {
			p1, p2 := a[i].Player, b[i].Player
			rows = append(rows, SheetRow{
				Player1:        p1.Name,
				Position1:      string(p1.Position),
				FanPts1:        Round2(p1.FanPoints),
				RosterPosition: a[i].Slot.SheetLabel(),
				FanPts2:        Round2(p2.FanPoints),
				Position2:      string(p2.Position),
				Player2:        p2.Name,
			})
		}
	}

	add(m.team1.Starters(), m.team2.Starters())
	rows = append(rows, SheetRow{
		RosterPosition: "Total",
		FanPts1:        Round2(m.team1.StartingPoints()),
		FanPts2:        Round2(m.team2.StartingPoints()),
	})
	add(m.team1.Bench(), m.team2.Bench())
	rows = append(rows, SheetRow{
		RosterPosition: "Total",
		FanPts1:        Round2(m.team1.BenchPoints()),
		FanPts2:        Round2(m.team2.BenchPoints()),
	})
	return rows
}
