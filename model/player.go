package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Player is one roster entry for a single week. Nothing in it changes once
// it is built.
type Player struct {
	Name       string
	Position   Position
	Team       *NFLTeam // nil when the export did not print a team code
	FanPoints  float64
	ProjPoints float64
}

// NetPoints is how far the player finished above (or below) projection.
func (p Player) NetPoints() float64 {
	return p.FanPoints - p.ProjPoints
}

func (p Player) IsFlex() bool {
	return p.Position.IsFlex()
}

func (p Player) String() string {
	team := "-"
	if p.Team != nil {
		team = p.Team.Abbrev()
	}
	return fmt.Sprintf("%s, %s, %s", p.Name, p.Position, team)
}

// RosterRow is one parsed row of a starting or bench table, in the export's
// fixed column order: player descriptor, projected points, fan points.
type RosterRow struct {
	Descriptor string
	Proj       float64
	FanPts     float64
}

// NewPlayer builds a Player from a row, parsing the descriptor against the
// given team codes.
func NewPlayer(row RosterRow, abbrevs AbbrevSet) (Player, error) {
	if strings.TrimSpace(row.Descriptor) == "" {
		return Player{}, errors.New("empty player descriptor")
	}
	if math.IsNaN(row.FanPts) || math.IsInf(row.FanPts, 0) {
		return Player{}, errors.Newf("fan points for %q are not a number", row.Descriptor)
	}
	if math.IsNaN(row.Proj) || math.IsInf(row.Proj, 0) {
		return Player{}, errors.Newf("projected points for %q are not a number", row.Descriptor)
	}

	name, pos, team := ParsePlayerDescriptor(row.Descriptor, abbrevs)
	return Player{
		Name:       name,
		Position:   pos,
		Team:       team,
		FanPoints:  row.FanPts,
		ProjPoints: row.Proj,
	}, nil
}

const descriptorSeparator = " - "

// ParsePlayerDescriptor splits the player cell of a roster export, e.g.
// "Patrick MahomesKC - QB" or "Amon-Ra St. BrownDET - WR", into name,
// position and NFL team. The team code is glued to the end of the name; a
// 2 letter code is tried before a 3 letter one and only upper case suffixes
// count. Descriptors without a " - " separator have an unknown position, and
// names without a trailing code (team defenses) have a nil team.
func ParsePlayerDescriptor(desc string, abbrevs AbbrevSet) (string, Position, *NFLTeam) {
	desc = strings.TrimSpace(desc)

	head := desc
	pos := POS_UNKNOWN
	if i := strings.LastIndex(desc, descriptorSeparator); i >= 0 {
		head = strings.TrimSpace(desc[:i])
		tail := strings.Fields(desc[i+len(descriptorSeparator):])
		if len(tail) > 0 {
			pos = ParsePosition(tail[0])
		}
	}

	for _, n := range []int{2, 3} {
		if len(head) <= n {
			continue
		}
		suffix := head[len(head)-n:]
		if suffix != strings.ToUpper(suffix) {
			continue
		}
		if team, ok := abbrevs.Lookup(suffix); ok {
			return strings.TrimSpace(head[:len(head)-n]), pos, team
		}
	}

	return head, pos, nil
}

// ParseScore reads a points cell. Empty cells and dash placeholders, which
// the exports print for empty roster spots, count as 0.
func ParseScore(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "-", "–", "—":
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid score %q", s)
	}
	return v, nil
}
