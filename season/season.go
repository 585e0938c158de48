package season

import (
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
)

const (
	trendingWeeks = 3
	trendingTeams = 3
)

// Season is the ordered list of weeks played so far. Every aggregate is
// computed from the weeks on each call.
type Season struct {
	weeks []*Week
	teams []string
}

// New checks that the weeks are in order and that every week has exactly the
// same teams as the first one.
func New(weeks []*Week) (*Season, error) {
	if len(weeks) == 0 {
		return nil, errors.Wrap(model.ErrMetricUndefined, "season has no weeks")
	}

	teams := weeks[0].LeagueTeams()
	want := slices.Clone(teams)
	sort.Strings(want)

	for i, w := range weeks {
		if w == nil {
			return nil, errors.Newf("week at position %d is missing", i)
		}
		if i > 0 && w.Number() <= weeks[i-1].Number() {
			return nil, errors.Newf("week %d is out of order after week %d", w.Number(), weeks[i-1].Number())
		}

		got := w.LeagueTeams()
		sort.Strings(got)
		if !slices.Equal(got, want) {
			return nil, &model.ParseError{Week: w.Number(), Row: -1,
				Err: errors.Newf("teams %v do not match week %d teams %v", got, weeks[0].Number(), want)}
		}
	}

	return &Season{weeks: slices.Clone(weeks), teams: teams}, nil
}

// Teams lists the league's teams in the order of the first week.
func (s *Season) Teams() []string {
	return slices.Clone(s.teams)
}

func (s *Season) Weeks() []*Week {
	return slices.Clone(s.weeks)
}

// WeekNumbers lists the week numbers in play order.
func (s *Season) WeekNumbers() []int {
	n := make([]int, 0, len(s.weeks))
	for _, w := range s.weeks {
		n = append(n, w.Number())
	}
	return n
}

func (s *Season) Week(number int) (*Week, bool) {
	for _, w := range s.weeks {
		if w.Number() == number {
			return w, true
		}
	}
	return nil, false
}

func (s *Season) hasTeam(team string) bool {
	return slices.Contains(s.teams, team)
}

// lastWeeks returns the most recent n weeks, or all of them when n <= 0 or
// n is larger than the season.
func (s *Season) lastWeeks(n int) []*Week {
	if n <= 0 || n >= len(s.weeks) {
		return s.weeks
	}
	return s.weeks[len(s.weeks)-n:]
}

func teamPoints(team string, weeks []*Week, filter model.PointsFilter) []float64 {
	pts := make([]float64, 0, len(weeks))
	for _, w := range weeks {
		r, ok := w.Roster(team)
		if !ok {
			continue
		}
		if filter == model.FILTER_ALL {
			pts = append(pts, r.StartingPoints())
		} else {
			pts = append(pts, r.PositionPoints(filter))
		}
	}
	return pts
}

// PointsForSeries is one entry per team per week, suitable for a
// distribution plot.
func (s *Season) PointsForSeries(filter model.PointsFilter) []model.TeamWeekPoints {
	series := make([]model.TeamWeekPoints, 0, len(s.teams)*len(s.weeks))
	for _, team := range s.teams {
		for _, w := range s.weeks {
			r, ok := w.Roster(team)
			if !ok {
				continue
			}
			pts := r.StartingPoints()
			if filter != model.FILTER_ALL {
				pts = r.PositionPoints(filter)
			}
			series = append(series, model.TeamWeekPoints{Team: team, Week: w.Number(), Points: pts})
		}
	}
	return series
}

// PointsFor lists each team's weekly starting points over the last n weeks
// (all weeks when n <= 0).
func (s *Season) PointsFor(lastN int) []model.TeamPoints {
	weeks := s.lastWeeks(lastN)
	res := make([]model.TeamPoints, 0, len(s.teams))
	for _, team := range s.teams {
		res = append(res, model.TeamPoints{Team: team, Points: teamPoints(team, weeks, model.FILTER_ALL)})
	}
	return res
}

// CeilingFloor is each team's best and worst week over the last n weeks.
func (s *Season) CeilingFloor(lastN int) []model.CeilingFloorRow {
	res := make([]model.CeilingFloorRow, 0, len(s.teams))
	for _, tp := range s.PointsFor(lastN) {
		res = append(res, model.CeilingFloorRow{
			Team:    tp.Team,
			Ceiling: slices.Max(tp.Points),
			Floor:   slices.Min(tp.Points),
		})
	}
	return res
}

// TrendingTeams ranks teams by their starting points over the last three
// weeks (or fewer if the season is shorter). fire returns the top three,
// otherwise the bottom three, both in descending order.
func (s *Season) TrendingTeams(fire bool) []string {
	recent := s.PointsFor(trendingWeeks)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Sum() > recent[j].Sum()
	})

	teams := make([]string, 0, len(recent))
	for _, tp := range recent {
		teams = append(teams, tp.Team)
	}

	n := min(trendingTeams, len(teams))
	if fire {
		return teams[:n]
	}
	return teams[len(teams)-n:]
}

// allPlayRecords sums every week's all-play record per team.
func (s *Season) allPlayRecords() map[string]model.Record {
	res := make(map[string]model.Record, len(s.teams))
	for _, w := range s.weeks {
		t := w.AllPlay()
		for _, team := range t.Teams() {
			r, _ := t.Record(team)
			res[team] = res[team].Add(r)
		}
	}
	return res
}

// Standings accumulates each team's record, points for and against, points
// above projection and all-play record over the whole season. Rows are
// sorted by wins, then points for.
func (s *Season) Standings(eff model.ManagerEfficiency) ([]model.StandingsRow, error) {
	allPlay := s.allPlayRecords()

	rows := make([]model.StandingsRow, 0, len(s.teams))
	for _, team := range s.teams {
		me, err := eff.Lookup(team)
		if err != nil {
			return nil, err
		}

		row := model.StandingsRow{Team: team, H2H: allPlay[team], ManagerEff: me}
		pap := 0.0
		for _, w := range s.weeks {
			m, ok := w.MatchupFor(team)
			if !ok {
				return nil, errors.Newf("team %q has no matchup in week %d", team, w.Number())
			}
			pf, _ := m.PointsFor(team)
			pa, _ := m.PointsAgainst(team)
			net, _ := m.PointsAboveProjected(team)
			row.PF += pf
			row.PA += pa
			pap += net
			if m.Winner() == team {
				row.Record.Wins++
			} else {
				row.Record.Losses++
			}
		}
		row.PF = model.Round2(row.PF)
		row.PA = model.Round2(row.PA)
		row.PaP = model.Round2(pap / float64(len(s.weeks)))
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Record.Wins != rows[j].Record.Wins {
			return rows[i].Record.Wins > rows[j].Record.Wins
		}
		return rows[i].PF > rows[j].PF
	})
	return rows, nil
}

// PowerRankings scores every team on points for, ceiling and floor over the
// last window weeks (all weeks when window <= 0) and on season-to-date
// all-play wins. Each metric is divided by the league max and scaled to
// teamCount*weight; a metric whose max is not positive scores 0 for everyone.
// Rank is the dense rank of the total, highest first. Rows come back in rank
// order.
func (s *Season) PowerRankings(window int) []model.PowerRankingRow {
	weeks := s.lastWeeks(window)
	allPlay := s.allPlayRecords()

	rows := make([]model.PowerRankingRow, 0, len(s.teams))
	for _, team := range s.teams {
		pts := teamPoints(team, weeks, model.FILTER_ALL)
		row := model.PowerRankingRow{
			Team:    team,
			Ceiling: slices.Max(pts),
			Floor:   slices.Min(pts),
			H2HWins: allPlay[team].Wins,
		}
		for _, p := range pts {
			row.PF += p
		}
		rows = append(rows, row)
	}

	n := float64(len(rows))
	scale := func(get func(model.PowerRankingRow) float64, weight float64, set func(*model.PowerRankingRow, float64)) {
		maxV := 0.0
		for _, r := range rows {
			maxV = max(maxV, get(r))
		}
		for i := range rows {
			v := 0.0
			if maxV > 0 {
				v = get(rows[i]) / maxV * n * weight
			}
			set(&rows[i], v)
		}
	}
	scale(func(r model.PowerRankingRow) float64 { return r.PF }, model.PowerWeightPF,
		func(r *model.PowerRankingRow, v float64) { r.PFScore = v })
	scale(func(r model.PowerRankingRow) float64 { return r.Ceiling }, model.PowerWeightCeiling,
		func(r *model.PowerRankingRow, v float64) { r.CeilingScore = v })
	scale(func(r model.PowerRankingRow) float64 { return r.Floor }, model.PowerWeightFloor,
		func(r *model.PowerRankingRow, v float64) { r.FloorScore = v })
	scale(func(r model.PowerRankingRow) float64 { return float64(r.H2HWins) }, model.PowerWeightH2HWins,
		func(r *model.PowerRankingRow, v float64) { r.H2HScore = v })

	totals := make([]float64, len(rows))
	for i := range rows {
		rows[i].Total = rows[i].PFScore + rows[i].CeilingScore + rows[i].FloorScore + rows[i].H2HScore
		totals[i] = rows[i].Total
	}
	for i, r := range denseRanks(totals) {
		rows[i].Rank = r
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Rank < rows[j].Rank
	})
	return rows
}

// PositionRankings ranks every team's mean weekly points per position group
// over the whole season. Rows are sorted by AvgRank, best first.
func (s *Season) PositionRankings() []model.PositionRankRow {
	points := make([]model.PositionPointsRow, 0, len(s.teams))
	for _, team := range s.teams {
		row := model.PositionPointsRow{Team: team}
		row.QB = mean(teamPoints(team, s.weeks, model.FILTER_QB))
		row.RB = mean(teamPoints(team, s.weeks, model.FILTER_RB))
		row.WR = mean(teamPoints(team, s.weeks, model.FILTER_WR))
		row.TE = mean(teamPoints(team, s.weeks, model.FILTER_TE))
		row.FLEX = mean(teamPoints(team, s.weeks, model.FILTER_FLEX))
		row.DEF = mean(teamPoints(team, s.weeks, model.FILTER_DEF))
		points = append(points, row)
	}

	rows := rankPositions(points)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgRank < rows[j].AvgRank
	})
	return rows
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
