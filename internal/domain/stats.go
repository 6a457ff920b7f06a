package domain

// DashboardStats summarizes participation activity
type DashboardStats struct {
	TotalParticipations int64   `json:"total_participations"`
	TotalWinners        int64   `json:"total_winners"`
	TotalClaimed        int64   `json:"total_claimed"`
	TotalPending        int64   `json:"total_pending"`
	AverageRating       float64 `json:"average_rating"`
}

// PoolSummary reports how well a prize pool's odds add up
type PoolSummary struct {
	PoolID           string          `json:"pool_id"`
	PrizesCount      int             `json:"prizes_count"`
	ActivePrizes     int             `json:"active_prizes"`
	TotalProbability float64         `json:"total_probability"`
	IsComplete       bool            `json:"is_complete"`
	StarTotals       map[int]float64 `json:"star_totals,omitempty"`
	StarComplete     map[int]bool    `json:"star_complete,omitempty"`
}
