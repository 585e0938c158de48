package season

import (
	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
)

// Report builds every season and weekly table. The caller stamps the ID,
// generation time and skipped weeks.
func (s *Season) Report(data *model.LeagueData, window int) (*model.Report, error) {
	summary, err := s.Summary(data, window)
	if err != nil {
		return nil, err
	}
	standings, err := s.Standings(data.ManagerEfficiency)
	if err != nil {
		return nil, err
	}

	r := &model.Report{
		League:        data.Name,
		Weeks:         s.WeekNumbers(),
		Summary:       summary,
		Standings:     standings,
		PowerRankings: s.PowerRankings(window),
		Positions:     s.PositionRankings(),
		PointsFor:     s.PointsForSeries(model.FILTER_ALL),
		CeilingFloor:  s.CeilingFloor(0),
	}
	for _, w := range s.weeks {
		wr, err := w.Report(data.ManagerEfficiency)
		if err != nil {
			return nil, errors.Wrapf(err, "week %d", w.number)
		}
		r.WeekReports = append(r.WeekReports, wr)
	}
	return r, nil
}
