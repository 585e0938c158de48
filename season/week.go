package season

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
)

// Week is the set of matchups played in one week of the season. It holds no
// derived state; ranking a week returns new values.
type Week struct {
	number   int
	matchups []*model.Matchup
}

// NewWeek validates that every team plays exactly once in the week.
func NewWeek(number int, matchups []*model.Matchup) (*Week, error) {
	if number < 1 {
		return nil, errors.Newf("invalid week number %d", number)
	}
	if len(matchups) == 0 {
		return nil, &model.ParseError{Week: number, Row: -1, Err: errors.New("week has no matchups")}
	}

	seen := make(map[string]int)
	for i, m := range matchups {
		if m == nil {
			return nil, &model.ParseError{Week: number, Matchup: i + 1, Row: -1, Err: errors.New("missing matchup")}
		}
		for _, team := range m.Teams() {
			if prev, ok := seen[team]; ok {
				return nil, &model.ParseError{Week: number, Matchup: i + 1, Team: team, Row: -1,
					Err: errors.Newf("team already plays in matchup %d", prev)}
			}
			seen[team] = i + 1
		}
	}

	return &Week{number: number, matchups: append([]*model.Matchup(nil), matchups...)}, nil
}

func (w *Week) Number() int {
	return w.number
}

func (w *Week) Matchups() []*model.Matchup {
	return append([]*model.Matchup(nil), w.matchups...)
}

// Rosters flattens the matchups: team1 then team2, in matchup order.
func (w *Week) Rosters() []*model.Roster {
	rosters := make([]*model.Roster, 0, 2*len(w.matchups))
	for _, m := range w.matchups {
		rosters = append(rosters, m.Team1(), m.Team2())
	}
	return rosters
}

// LeagueTeams lists team names in flattened roster order.
func (w *Week) LeagueTeams() []string {
	teams := make([]string, 0, 2*len(w.matchups))
	for _, r := range w.Rosters() {
		teams = append(teams, r.Team())
	}
	return teams
}

func (w *Week) Winners() []string {
	winners := make([]string, 0, len(w.matchups))
	for _, m := range w.matchups {
		winners = append(winners, m.Winner())
	}
	return winners
}

// MatchupFor returns the matchup the team played in.
func (w *Week) MatchupFor(team string) (*model.Matchup, bool) {
	for _, m := range w.matchups {
		if m.HasTeam(team) {
			return m, true
		}
	}
	return nil, false
}

func (w *Week) Roster(team string) (*model.Roster, bool) {
	m, ok := w.MatchupFor(team)
	if !ok {
		return nil, false
	}
	own, _, err := m.Roster(team)
	return own, err == nil
}

// RankedRoster is a roster with its points-for rank for the week.
type RankedRoster struct {
	Rank   int
	Roster *model.Roster
}

// PointsRanking is a week's rosters ordered by starting points, best first.
type PointsRanking struct {
	week    int
	entries []RankedRoster
}

// RankByPoints sorts the rosters by starting points, highest first, and
// numbers them 1..N. On equal points the roster that comes first in
// flattened order keeps the better rank.
func (w *Week) RankByPoints() PointsRanking {
	rosters := w.Rosters()
	sort.SliceStable(rosters, func(i, j int) bool {
		return rosters[i].StartingPoints() > rosters[j].StartingPoints()
	})

	entries := make([]RankedRoster, len(rosters))
	for i, r := range rosters {
		entries[i] = RankedRoster{Rank: i + 1, Roster: r}
	}
	return PointsRanking{week: w.number, entries: entries}
}

func (p PointsRanking) Week() int {
	return p.week
}

func (p PointsRanking) Len() int {
	return len(p.entries)
}

func (p PointsRanking) Entries() []RankedRoster {
	return append([]RankedRoster(nil), p.entries...)
}

func (p PointsRanking) Rank(team string) (int, bool) {
	for _, e := range p.entries {
		if e.Roster.Team() == team {
			return e.Rank, true
		}
	}
	return 0, false
}

// AllPlayTable holds the record each team would have had playing every
// other team in the week.
type AllPlayTable struct {
	teams   []string
	records map[string]model.Record
}

// AllPlay gives the team at 0-based rank index i the record [N-1-i, i].
func (p PointsRanking) AllPlay() AllPlayTable {
	n := len(p.entries)
	t := AllPlayTable{
		teams:   make([]string, 0, n),
		records: make(map[string]model.Record, n),
	}
	for i, e := range p.entries {
		team := e.Roster.Team()
		t.teams = append(t.teams, team)
		t.records[team] = model.Record{Wins: n - 1 - i, Losses: i}
	}
	return t
}

// Teams lists teams in ranking order.
func (t AllPlayTable) Teams() []string {
	return append([]string(nil), t.teams...)
}

func (t AllPlayTable) Record(team string) (model.Record, bool) {
	r, ok := t.records[team]
	return r, ok
}

// AllPlay ranks the week and derives the all-play records in one step.
func (w *Week) AllPlay() AllPlayTable {
	return w.RankByPoints().AllPlay()
}

// AdvancedTable lists {Team, PF, H2H, Manager Eff} in points-for order.
func (w *Week) AdvancedTable(eff model.ManagerEfficiency) ([]model.WeekAdvancedRow, error) {
	ranking := w.RankByPoints()
	allPlay := ranking.AllPlay()

	rows := make([]model.WeekAdvancedRow, 0, ranking.Len())
	for _, e := range ranking.entries {
		team := e.Roster.Team()
		me, err := eff.Lookup(team)
		if err != nil {
			return nil, errors.Wrapf(err, "week %d", w.number)
		}
		h2h, _ := allPlay.Record(team)
		rows = append(rows, model.WeekAdvancedRow{
			Team:       team,
			PF:         model.Round2(e.Roster.StartingPoints()),
			H2H:        h2h,
			ManagerEff: me,
		})
	}
	return rows, nil
}

// PositionPoints lists each roster's starting points per position group, in
// flattened roster order.
func (w *Week) PositionPoints() []model.PositionPointsRow {
	rosters := w.Rosters()
	rows := make([]model.PositionPointsRow, 0, len(rosters))
	for _, r := range rosters {
		rows = append(rows, model.PositionPointsRow{
			Team: r.Team(),
			QB:   r.PositionPoints(model.FILTER_QB),
			RB:   r.PositionPoints(model.FILTER_RB),
			WR:   r.PositionPoints(model.FILTER_WR),
			TE:   r.PositionPoints(model.FILTER_TE),
			FLEX: r.PositionPoints(model.FILTER_FLEX),
			DEF:  r.PositionPoints(model.FILTER_DEF),
		})
	}
	return rows
}

// PositionRanks ranks the week's PositionPoints per group.
func (w *Week) PositionRanks() []model.PositionRankRow {
	return rankPositions(w.PositionPoints())
}

// Sheets lays out every matchup of the week, numbered from 1.
func (w *Week) Sheets() []model.MatchupSheet {
	sheets := make([]model.MatchupSheet, 0, len(w.matchups))
	for i, m := range w.matchups {
		teams := m.Teams()
		sheets = append(sheets, model.MatchupSheet{
			Index: i + 1,
			Team1: teams[0],
			Team2: teams[1],
			Rows:  m.Sheet(),
		})
	}
	return sheets
}

// Report gathers the per-week tables.
func (w *Week) Report(eff model.ManagerEfficiency) (model.WeekReport, error) {
	advanced, err := w.AdvancedTable(eff)
	if err != nil {
		return model.WeekReport{}, err
	}
	return model.WeekReport{
		Week:      w.number,
		Winners:   w.Winners(),
		Advanced:  advanced,
		Positions: w.PositionRanks(),
		Matchups:  w.Sheets(),
	}, nil
}
