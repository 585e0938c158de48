package season

import (
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
)

const (
	playoffSpots = 4
	// maxPlayoffLookahead caps how far a tie at the cutoff extends the field.
	// Ties running past the 7th team are not considered.
	maxPlayoffLookahead = 7
)

// PlayoffTeams picks the current playoff field from the standings: the top
// four by wins. When teams are tied on wins at the cutoff the field grows to
// include them (up to seven teams), and the lowest win group of that field is
// ordered by points for to fill the spots left. Teams above the tied group
// come first.
func PlayoffTeams(rows []model.StandingsRow) []string {
	sorted := slices.Clone(rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Record.Wins > sorted[j].Record.Wins
	})

	if len(sorted) <= playoffSpots {
		teams := make([]string, 0, len(sorted))
		for _, r := range sorted {
			teams = append(teams, r.Team)
		}
		return teams
	}

	n := playoffSpots
	for n < len(sorted) && n < maxPlayoffLookahead && sorted[n].Record.Wins == sorted[n-1].Record.Wins {
		n++
	}
	field := sorted[:n]
	minWins := field[n-1].Record.Wins

	var above, tied []model.StandingsRow
	for _, r := range field {
		if r.Record.Wins == minWins {
			tied = append(tied, r)
		} else {
			above = append(above, r)
		}
	}
	sort.SliceStable(tied, func(i, j int) bool {
		return tied[i].PF > tied[j].PF
	})

	teams := make([]string, 0, playoffSpots)
	for _, r := range above {
		teams = append(teams, r.Team)
	}
	for _, r := range tied[:playoffSpots-len(above)] {
		teams = append(teams, r.Team)
	}
	return teams
}

// ProjectRecords plays out the remaining schedule on top of each row's
// current record. The team with the better (lower) power ranking is
// projected to win; on equal rankings the first listed team wins. Every team
// in the rows must appear in a non-empty schedule, and every scheduled team
// must have a row. The input rows are not modified.
func ProjectRecords(rows []model.SummaryRow, schedule model.Schedule) ([]model.SummaryRow, error) {
	res := slices.Clone(rows)
	index := make(map[string]int, len(res))
	for i := range res {
		index[res[i].Team] = i
		res[i].ProjRecord = res[i].Record
	}

	lookup := func(team string) (int, error) {
		i, ok := index[team]
		if !ok {
			return 0, &model.UnknownTeamError{Team: team, Table: "standings"}
		}
		return i, nil
	}

	for _, w := range schedule {
		for _, g := range w.Games {
			i1, err := lookup(g.Team1)
			if err != nil {
				return nil, errors.Wrapf(err, "remaining schedule %s", w.Label)
			}
			i2, err := lookup(g.Team2)
			if err != nil {
				return nil, errors.Wrapf(err, "remaining schedule %s", w.Label)
			}

			winner, loser := i1, i2
			if res[i1].PowerRanking > res[i2].PowerRanking {
				winner, loser = i2, i1
			}
			res[winner].ProjRecord.Wins++
			res[loser].ProjRecord.Losses++
		}
	}

	if len(schedule) > 0 {
		scheduled := schedule.Teams()
		for _, r := range res {
			if !slices.Contains(scheduled, r.Team) {
				return nil, &model.UnknownTeamError{Team: r.Team, Table: "remaining schedule"}
			}
		}
	}

	return res, nil
}
