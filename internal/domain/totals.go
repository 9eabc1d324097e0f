package domain

// SalesTotals soma os campos numéricos de um conjunto de vendas
type SalesTotals struct {
	Orders   int     `json:"orders"`
	Sales    float64 `json:"sales"`
	Quantity float64 `json:"quantity"`
	Discount float64 `json:"discount"`
	Profit   float64 `json:"profit"`
}

// SalesSummary é a resposta de totais de uma seleção de filtros
type SalesSummary struct {
	Selection FilterSelection `json:"selection"`
	Totals    SalesTotals     `json:"totals"`
}
