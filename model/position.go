package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_DEF     Position = "DEF"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "qb":
		return POS_QB
	case "rb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "def", "dst", "d/st":
		return POS_DEF
	default:
		return POS_UNKNOWN
	}
}

// IsFlex reports whether a player at this position can fill a FLEX slot.
func (p Position) IsFlex() bool {
	return p == POS_RB || p == POS_WR || p == POS_TE
}

// PointsFilter selects which starting slots are summed by Roster.PositionPoints.
type PointsFilter string

const (
	FILTER_ALL  PointsFilter = "All"
	FILTER_QB   PointsFilter = "QB"
	FILTER_RB   PointsFilter = "RB"
	FILTER_WR   PointsFilter = "WR"
	FILTER_TE   PointsFilter = "TE"
	FILTER_FLEX PointsFilter = "FLEX"
	FILTER_DEF  PointsFilter = "DEF"
)

// RankedFilters are the position groups that appear in the position ranking tables.
var RankedFilters = []PointsFilter{FILTER_QB, FILTER_RB, FILTER_WR, FILTER_TE, FILTER_FLEX}

// ParsePointsFilter accepts the group names case insensitively. An empty
// string means All.
func ParsePointsFilter(f string) (PointsFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "", "all":
		return FILTER_ALL, true
	case "qb":
		return FILTER_QB, true
	case "rb":
		return FILTER_RB, true
	case "wr":
		return FILTER_WR, true
	case "te":
		return FILTER_TE, true
	case "flex":
		return FILTER_FLEX, true
	case "def":
		return FILTER_DEF, true
	default:
		return "", false
	}
}
