package model

// PositionPointsRow is a team's starting points per position group. For a
// season table the values are weekly means.
type PositionPointsRow struct {
	Team string  `json:"team"`
	QB   float64 `json:"qb"`
	RB   float64 `json:"rb"`
	WR   float64 `json:"wr"`
	TE   float64 `json:"te"`
	FLEX float64 `json:"flex"`
	DEF  float64 `json:"def"`
}

// Points returns the value for one of the ranked filters.
func (r PositionPointsRow) Points(f PointsFilter) float64 {
	switch f {
	case FILTER_QB:
		return r.QB
	case FILTER_RB:
		return r.RB
	case FILTER_WR:
		return r.WR
	case FILTER_TE:
		return r.TE
	case FILTER_FLEX:
		return r.FLEX
	case FILTER_DEF:
		return r.DEF
	case FILTER_ALL:
		return r.QB + r.RB + r.WR + r.TE + r.FLEX + r.DEF
	}
	return 0
}

// PositionRankRow ranks a team against the league in each of RankedFilters.
// Ties share the average of the ranks they span, so ranks can be x.5.
type PositionRankRow struct {
	Team    string  `json:"team"`
	QB      float64 `json:"qb_rank"`
	RB      float64 `json:"rb_rank"`
	WR      float64 `json:"wr_rank"`
	TE      float64 `json:"te_rank"`
	FLEX    float64 `json:"flex_rank"`
	AvgRank float64 `json:"avg_rank"`
}

func (r PositionRankRow) Rank(f PointsFilter) float64 {
	switch f {
	case FILTER_QB:
		return r.QB
	case FILTER_RB:
		return r.RB
	case FILTER_WR:
		return r.WR
	case FILTER_TE:
		return r.TE
	case FILTER_FLEX:
		return r.FLEX
	}
	return 0
}

func (r *PositionRankRow) SetRank(f PointsFilter, v float64) {
	switch f {
	case FILTER_QB:
		r.QB = v
	case FILTER_RB:
		r.RB = v
	case FILTER_WR:
		r.WR = v
	case FILTER_TE:
		r.TE = v
	case FILTER_FLEX:
		r.FLEX = v
	}
}
