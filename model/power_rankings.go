package model

// Power ranking weights. Each metric is scaled to 0..teamCount*weight.
const (
	PowerWeightPF      = 4
	PowerWeightCeiling = 2
	PowerWeightFloor   = 1
	PowerWeightH2HWins = 3
)

// DefaultPowerRankingWindow is the number of recent weeks the point based
// metrics look at.
const DefaultPowerRankingWindow = 5

type PowerRankingRow struct {
	Team    string  `json:"team"`
	Rank    int     `json:"power_ranking"`
	Total   float64 `json:"pr_total"`
	PF      float64 `json:"pf"`
	Ceiling float64 `json:"ceiling"`
	Floor   float64 `json:"floor"`
	H2HWins int     `json:"h2h_wins"`

	PFScore      float64 `json:"pf_score"`
	CeilingScore float64 `json:"ceiling_score"`
	FloorScore   float64 `json:"floor_score"`
	H2HScore     float64 `json:"h2h_score"`
}

// CeilingFloorRow is a team's best and worst single week.
type CeilingFloorRow struct {
	Team    string  `json:"team"`
	Ceiling float64 `json:"ceiling"`
	Floor   float64 `json:"floor"`
}

// TeamPoints is a team's starting points per week, oldest first.
type TeamPoints struct {
	Team   string    `json:"team"`
	Points []float64 `json:"points"`
}

func (t TeamPoints) Sum() float64 {
	total := 0.0
	for _, p := range t.Points {
		total += p
	}
	return total
}

// TeamWeekPoints is one point of the points-for distribution series.
type TeamWeekPoints struct {
	Team   string  `json:"team"`
	Week   int     `json:"week"`
	Points float64 `json:"points"`
}
