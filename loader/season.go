package loader

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/mww/fantasy_report/model"
	"github.com/mww/fantasy_report/season"
	"go.uber.org/zap"
)

// summaryTolerance is how far a roster total may drift from the scoreboard
// before it is reported.
const summaryTolerance = 0.01

type Options struct {
	Weeks []int
	// MatchupsPerWeek is the number of detail exports per week. 0 takes one
	// per scoreboard line. Every scoreboard line must be covered by an export.
	MatchupsPerWeek    int
	SkipMalformedWeeks bool
	BenchFallback      bool
	Abbrevs            model.AbbrevSet
}

// Result is a loaded season plus the weeks that were dropped.
type Result struct {
	Season  *season.Season
	Skipped []int
}

// LoadSeason loads every requested week from src and builds the season. A
// malformed week aborts the load unless SkipMalformedWeeks is set, in which
// case the whole week is dropped, logged and listed in Result.Skipped.
// Missing exports always abort.
func LoadSeason(ctx context.Context, src Source, opts Options, logger *zap.SugaredLogger) (*Result, error) {
	if len(opts.Weeks) == 0 {
		return nil, errors.Wrap(model.ErrMetricUndefined, "no weeks requested")
	}

	res := &Result{}
	var weeks []*season.Week
	for _, week := range opts.Weeks {
		w, err := loadWeek(ctx, src, week, opts, logger)
		if err != nil {
			if opts.SkipMalformedWeeks && errors.Is(err, model.ErrMalformedInput) {
				logger.Warnw("skipping malformed week", "week", week, "error", err)
				res.Skipped = append(res.Skipped, week)
				continue
			}
			return nil, errors.Wrapf(err, "loading week %d", week)
		}
		weeks = append(weeks, w)
	}

	s, err := season.New(weeks)
	if err != nil {
		return nil, err
	}
	res.Season = s

	logger.Infow("loaded season", "weeks", s.WeekNumbers(), "skipped", res.Skipped, "teams", len(s.Teams()))
	return res, nil
}

func loadWeek(ctx context.Context, src Source, week int, opts Options, logger *zap.SugaredLogger) (*season.Week, error) {
	summaries, err := src.LoadMatchupSummary(ctx, week)
	if err != nil {
		return nil, err
	}

	count := opts.MatchupsPerWeek
	if count <= 0 {
		count = len(summaries)
	}

	rosterOpts := []model.RosterOption{}
	if opts.BenchFallback {
		rosterOpts = append(rosterOpts, model.WithBenchFallback())
	}
	if opts.Abbrevs != nil {
		rosterOpts = append(rosterOpts, model.WithAbbrevs(opts.Abbrevs))
	}

	matched := make([]bool, len(summaries))
	matchups := make([]*model.Matchup, 0, count)
	for i := 1; i <= count; i++ {
		tables, err := src.LoadRosterTables(ctx, week, i)
		if err != nil {
			return nil, err
		}

		m, err := buildMatchup(tables, rosterOpts)
		if err != nil {
			var pe *model.ParseError
			if errors.As(err, &pe) {
				return nil, pe.InWeek(week, i)
			}
			return nil, errors.Wrapf(err, "matchup %d", i)
		}

		line, err := checkSummary(m, summaries, week, i, logger)
		if err != nil {
			return nil, err
		}
		if matched[line] {
			teams := m.Teams()
			return nil, &model.ParseError{Week: week, Matchup: i, Team: teams[0], Table: "summary", Row: line,
				Err: errors.Newf("%s vs %s was exported twice", teams[0], teams[1])}
		}
		matched[line] = true
		for _, r := range []*model.Roster{m.Team1(), m.Team2()} {
			if fb := r.Fallbacks(); len(fb) > 0 {
				logger.Warnw("starting slots read from the bench table",
					"week", week, "matchup", i, "team", r.Team(), "slots", fb)
			}
		}
		matchups = append(matchups, m)
	}

	for line, ok := range matched {
		if !ok {
			sm := summaries[line]
			return nil, &model.ParseError{Week: week, Team: sm.Team1, Table: "summary", Row: line,
				Err: errors.Newf("%s vs %s has no matchup export", sm.Team1, sm.Team2)}
		}
	}

	return season.NewWeek(week, matchups)
}

func buildMatchup(t *MatchupTables, opts []model.RosterOption) (*model.Matchup, error) {
	team1, err := model.NewRoster(t.Team1.Team, t.Team1.Starting, t.Team1.Bench, opts...)
	if err != nil {
		return nil, err
	}
	team2, err := model.NewRoster(t.Team2.Team, t.Team2.Starting, t.Team2.Bench, opts...)
	if err != nil {
		return nil, err
	}
	m, err := model.NewMatchup(team1, team2)
	if err != nil {
		return nil, &model.ParseError{Row: -1, Err: err}
	}
	return m, nil
}

// checkSummary requires the matchup's pairing to be on the scoreboard and
// logs score differences. It returns the index of the scoreboard line.
func checkSummary(m *model.Matchup, summaries []model.MatchupSummary, week, index int, logger *zap.SugaredLogger) (int, error) {
	teams := m.Teams()
	for line, s := range summaries {
		if !s.SameTeams(teams) {
			continue
		}
		for _, team := range teams {
			want := s.Team1Score
			if s.Team2 == team {
				want = s.Team2Score
			}
			got, _ := m.PointsFor(team)
			if math.Abs(got-want) > summaryTolerance {
				logger.Warnw("roster total does not match the scoreboard",
					"week", week, "matchup", index, "team", team, "roster", got, "scoreboard", want)
			}
		}
		return line, nil
	}

	return 0, &model.ParseError{Week: week, Matchup: index, Team: teams[0], Table: "summary", Row: -1,
		Err: errors.Newf("%s vs %s is not on the scoreboard", teams[0], teams[1])}
}
