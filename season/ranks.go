package season

import (
	"sort"

	"github.com/mww/fantasy_report/model"
)

// averageRanks ranks values highest first. Equal values share the mean of
// the positions they cover, so [10, 8, 8, 5] ranks as [1, 2.5, 2.5, 4].
func averageRanks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] > values[idx[b]]
	})

	ranks := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// denseRanks ranks values highest first with no gaps: [10, 8, 8, 5] ranks as
// [1, 2, 2, 3].
func denseRanks(values []float64) []int {
	distinct := append([]float64(nil), values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	next := 1
	for _, v := range distinct {
		if _, ok := rankOf[v]; !ok {
			rankOf[v] = next
			next++
		}
	}

	ranks := make([]int, len(values))
	for i, v := range values {
		ranks[i] = rankOf[v]
	}
	return ranks
}

// rankPositions turns position points into position ranks. AvgRank is the
// mean of the ranks in model.RankedFilters.
func rankPositions(points []model.PositionPointsRow) []model.PositionRankRow {
	rows := make([]model.PositionRankRow, len(points))
	for i, p := range points {
		rows[i].Team = p.Team
	}

	values := make([]float64, len(points))
	for _, f := range model.RankedFilters {
		for i, p := range points {
			values[i] = p.Points(f)
		}
		for i, r := range averageRanks(values) {
			rows[i].SetRank(f, r)
		}
	}

	for i := range rows {
		total := 0.0
		for _, f := range model.RankedFilters {
			total += rows[i].Rank(f)
		}
		rows[i].AvgRank = model.Round2(total / float64(len(model.RankedFilters)))
	}
	return rows
}
