package season

import (
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
)

// Summary builds the season summary table: one row per team with its power
// ranking, record, points, all-play record, points above projection,
// manager efficiency and projected record, sorted by power ranking. Trending
// and clinched status are attached as badges; team names stay undecorated.
func (s *Season) Summary(data *model.LeagueData, window int) (*model.SeasonSummary, error) {
	if data == nil {
		return nil, errors.New("league data is required")
	}
	for _, team := range data.Clinched {
		if !s.hasTeam(team) {
			return nil, &model.UnknownTeamError{Team: team, Table: "clinched"}
		}
	}

	standings, err := s.Standings(data.ManagerEfficiency)
	if err != nil {
		return nil, err
	}

	ranks := make(map[string]int, len(s.teams))
	for _, pr := range s.PowerRankings(window) {
		ranks[pr.Team] = pr.Rank
	}

	rows := make([]model.SummaryRow, 0, len(standings))
	for _, st := range standings {
		rows = append(rows, model.SummaryRow{
			Team:         st.Team,
			PowerRanking: ranks[st.Team],
			Record:       st.Record,
			PF:           st.PF,
			PA:           st.PA,
			H2H:          st.H2H,
			PaP:          st.PaP,
			ManagerEff:   st.ManagerEff,
		})
	}

	rows, err = ProjectRecords(rows, data.Schedule)
	if err != nil {
		return nil, err
	}

	summary := &model.SeasonSummary{
		OnFire:   s.TrendingTeams(true),
		Cold:     s.TrendingTeams(false),
		Playoffs: PlayoffTeams(standings),
	}
	for i := range rows {
		team := rows[i].Team
		if data.IsClinched(team) {
			rows[i].Badges = append(rows[i].Badges, model.BADGE_CLINCHED)
		}
		if slices.Contains(summary.OnFire, team) {
			rows[i].Badges = append(rows[i].Badges, model.BADGE_FIRE)
		}
		if slices.Contains(summary.Cold, team) {
			rows[i].Badges = append(rows[i].Badges, model.BADGE_COLD)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PowerRanking < rows[j].PowerRanking
	})
	summary.Rows = rows
	return summary, nil
}
