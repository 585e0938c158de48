package model

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Slot is a fixed lineup position on a Roster.
type Slot string

const (
	SLOT_QB    Slot = "QB"
	SLOT_WR1   Slot = "WR1"
	SLOT_WR2   Slot = "WR2"
	SLOT_RB1   Slot = "RB1"
	SLOT_RB2   Slot = "RB2"
	SLOT_TE    Slot = "TE"
	SLOT_FLEX1 Slot = "FLEX1"
	SLOT_FLEX2 Slot = "FLEX2"
	SLOT_DEF   Slot = "DEF"
	SLOT_BN1   Slot = "BN1"
	SLOT_BN2   Slot = "BN2"
	SLOT_BN3   Slot = "BN3"
	SLOT_BN4   Slot = "BN4"
	SLOT_BN5   Slot = "BN5"
	SLOT_BN6   Slot = "BN6"
	SLOT_BN7   Slot = "BN7"
	SLOT_BN8   Slot = "BN8"
)

// StartingSlots are in the same order as the rows of the starting table.
var StartingSlots = []Slot{
	SLOT_QB, SLOT_WR1, SLOT_WR2, SLOT_RB1, SLOT_RB2, SLOT_TE, SLOT_FLEX1, SLOT_FLEX2, SLOT_DEF,
}

// BenchSlots are in the same order as the rows of the bench table.
var BenchSlots = []Slot{
	SLOT_BN1, SLOT_BN2, SLOT_BN3, SLOT_BN4, SLOT_BN5, SLOT_BN6, SLOT_BN7, SLOT_BN8,
}

const numSlots = 17

var slotGroups = map[Slot]PointsFilter{
	SLOT_QB:    FILTER_QB,
	SLOT_WR1:   FILTER_WR,
	SLOT_WR2:   FILTER_WR,
	SLOT_RB1:   FILTER_RB,
	SLOT_RB2:   FILTER_RB,
	SLOT_TE:    FILTER_TE,
	SLOT_FLEX1: FILTER_FLEX,
	SLOT_FLEX2: FILTER_FLEX,
	SLOT_DEF:   FILTER_DEF,
}

// Group is the position group a starting slot scores for. Bench slots have no group.
func (s Slot) Group() PointsFilter {
	return slotGroups[s]
}

func (s Slot) IsStarting() bool {
	_, ok := slotGroups[s]
	return ok
}

// SheetLabel is the roster position column printed in a matchup sheet.
func (s Slot) SheetLabel() string {
	switch s.Group() {
	case FILTER_FLEX:
		return "W/R/T"
	case "":
		return "BN"
	default:
		return string(s.Group())
	}
}

// Roster is one team's full lineup for one week. It is immutable; all the
// point totals are recomputed from the players on every call.
type Roster struct {
	team      string
	players   [numSlots]Player
	fallbacks []Slot
}

// SlotPlayer pairs a slot with the player filling it.
type SlotPlayer struct {
	Slot   Slot
	Player Player
}

type rosterOptions struct {
	benchFallback bool
	abbrevs       AbbrevSet
}

type RosterOption func(*rosterOptions)

// WithBenchFallback lets a starting slot with no row in the starting table
// read the bench row at the same index. Every slot filled that way is listed
// by Roster.Fallbacks.
func WithBenchFallback() RosterOption {
	return func(o *rosterOptions) {
		o.benchFallback = true
	}
}

// WithAbbrevs sets the team codes used to parse player descriptors.
func WithAbbrevs(a AbbrevSet) RosterOption {
	return func(o *rosterOptions) {
		o.abbrevs = a
	}
}

// NewRoster builds a roster from the starting table (9 rows, in StartingSlots
// order) and the bench table (at least 8 rows, in BenchSlots order). Bench
// rows past BN8, such as injured reserve, are only read by the bench
// fallback. Missing or bad rows fail with a *ParseError.
func NewRoster(team string, starting, bench []RosterRow, opts ...RosterOption) (*Roster, error) {
	o := rosterOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.abbrevs == nil {
		o.abbrevs = DefaultAbbrevs()
	}

	team = strings.TrimSpace(team)
	if team == "" {
		return nil, &ParseError{Row: -1, Field: "team", Err: errors.New("team name is empty")}
	}
	if len(starting) > len(StartingSlots) {
		return nil, &ParseError{Team: team, Table: "starting", Row: -1,
			Err: errors.Newf("expected %d rows, got %d", len(StartingSlots), len(starting))}
	}

	r := &Roster{team: team}
	for i, slot := range StartingSlots {
		if i < len(starting) {
			p, err := NewPlayer(starting[i], o.abbrevs)
			if err != nil {
				return nil, &ParseError{Team: team, Table: "starting", Row: i, Field: "player", Err: err}
			}
			r.players[i] = p
			continue
		}

		if !o.benchFallback {
			return nil, &ParseError{Team: team, Table: "starting", Row: i,
				Err: errors.Newf("no row for slot %s (table has %d rows)", slot, len(starting))}
		}
		if i >= len(bench) {
			return nil, &ParseError{Team: team, Table: "starting", Row: i,
				Err: errors.Newf("no row for slot %s in the starting table (%d rows) or the bench table (%d rows)",
					slot, len(starting), len(bench))}
		}
		p, err := NewPlayer(bench[i], o.abbrevs)
		if err != nil {
			return nil, &ParseError{Team: team, Table: "bench", Row: i, Field: "player", Err: err}
		}
		r.players[i] = p
		r.fallbacks = append(r.fallbacks, slot)
	}

	for i, slot := range BenchSlots {
		if i >= len(bench) {
			return nil, &ParseError{Team: team, Table: "bench", Row: i,
				Err: errors.Newf("no row for slot %s (table has %d rows)", slot, len(bench))}
		}
		p, err := NewPlayer(bench[i], o.abbrevs)
		if err != nil {
			return nil, &ParseError{Team: team, Table: "bench", Row: i, Field: "player", Err: err}
		}
		r.players[len(StartingSlots)+i] = p
	}

	return r, nil
}

func (r *Roster) Team() string {
	return r.team
}

// Player returns the player in the slot. Unknown slots return false.
func (r *Roster) Player(slot Slot) (Player, bool) {
	for i, s := range StartingSlots {
		if s == slot {
			return r.players[i], true
		}
	}
	for i, s := range BenchSlots {
		if s == slot {
			return r.players[len(StartingSlots)+i], true
		}
	}
	return Player{}, false
}

// Starters lists the starting lineup in slot order.
func (r *Roster) Starters() []SlotPlayer {
	res := make([]SlotPlayer, 0, len(StartingSlots))
	for i, s := range StartingSlots {
		res = append(res, SlotPlayer{Slot: s, Player: r.players[i]})
	}
	return res
}

// Bench lists the bench in slot order.
func (r *Roster) Bench() []SlotPlayer {
	res := make([]SlotPlayer, 0, len(BenchSlots))
	for i, s := range BenchSlots {
		res = append(res, SlotPlayer{Slot: s, Player: r.players[len(StartingSlots)+i]})
	}
	return res
}

// Fallbacks lists the starting slots that were read from the bench table.
func (r *Roster) Fallbacks() []Slot {
	return append([]Slot(nil), r.fallbacks...)
}

func (r *Roster) StartingPoints() float64 {
	total := 0.0
	for i := range StartingSlots {
		total += r.players[i].FanPoints
	}
	return total
}

func (r *Roster) BenchPoints() float64 {
	total := 0.0
	for i := range BenchSlots {
		total += r.players[len(StartingSlots)+i].FanPoints
	}
	return total
}

// NetPoints is the starting lineup's total points above projection.
func (r *Roster) NetPoints() float64 {
	net := 0.0
	for i := range StartingSlots {
		net += r.players[i].NetPoints()
	}
	return net
}

// PositionPoints sums the fan points of the starting slots in the group.
// FILTER_FLEX covers both FLEX slots and FILTER_ALL the whole lineup.
func (r *Roster) PositionPoints(filter PointsFilter) float64 {
	total := 0.0
	for i, s := range StartingSlots {
		if filter == FILTER_ALL || s.Group() == filter {
			total += r.players[i].FanPoints
		}
	}
	return total
}
