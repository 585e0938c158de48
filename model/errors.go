package model

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformedInput marks every error caused by a roster or matchup table
	// that is missing rows, columns or values.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnknownTeam marks a team name that has no entry in a lookup table.
	ErrUnknownTeam = errors.New("unknown team")
	// ErrMetricUndefined is returned when a statistic has no data to work with,
	// e.g. a season without weeks.
	ErrMetricUndefined = errors.New("metric undefined")
	// ErrTeamNotInMatchup is returned by the Matchup accessors.
	ErrTeamNotInMatchup = errors.New("team not in matchup")
)

// ParseError identifies the piece of input that could not be turned into
// roster data. Zero valued fields are unknown and left out of the message.
type ParseError struct {
	Week    int
	Matchup int
	Team    string
	Table   string // "starting", "bench" or "summary"
	Row     int    // 0-based, -1 when not row specific
	Field   string
	Err     error
}

func (e *ParseError) Error() string {
	parts := make([]string, 0, 6)
	if e.Week > 0 {
		parts = append(parts, fmt.Sprintf("week %d", e.Week))
	}
	if e.Matchup > 0 {
		parts = append(parts, fmt.Sprintf("matchup %d", e.Matchup))
	}
	if e.Team != "" {
		parts = append(parts, fmt.Sprintf("team %q", e.Team))
	}
	if e.Table != "" {
		parts = append(parts, fmt.Sprintf("%s table", e.Table))
	}
	if e.Row >= 0 {
		parts = append(parts, fmt.Sprintf("row %d", e.Row))
	}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field %s", e.Field))
	}

	msg := "malformed input"
	if len(parts) > 0 {
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

// InWeek returns a copy of the error located in the given week and matchup.
// Values already set are kept.
func (e *ParseError) InWeek(week, matchup int) *ParseError {
	c := *e
	if c.Week == 0 {
		c.Week = week
	}
	if c.Matchup == 0 {
		c.Matchup = matchup
	}
	return &c
}

// UnknownTeamError is a lookup miss on one of the league tables.
type UnknownTeamError struct {
	Team  string
	Table string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team %q in %s", e.Team, e.Table)
}

func (e *UnknownTeamError) Is(target error) bool {
	return target == ErrUnknownTeam
}
