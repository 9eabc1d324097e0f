package domain

import "time"

type StateRankingSnapshot struct {
	ID         string             `json:"id"`
	Ranking    []StateRankingItem `json:"ranking"`
	LastUpdate time.Time          `json:"last_update"`
}

type StateRankingItem struct {
	State         string  `json:"state"`
	TotalSales    float64 `json:"total_sales"`
	TotalProfit   float64 `json:"total_profit"`
	TotalQuantity int     `json:"total_quantity"`
	Orders        int     `json:"orders"`
	Position      int     `json:"position"`
}
