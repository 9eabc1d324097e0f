package ranking

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type RankingService interface {
	ComputeStateRanking() (*domain.StateRankingSnapshot, error)
}

type StateRankingService struct {
	dataset *domain.Dataset
	now     func() time.Time
}

func NewStateRankingService(dataset *domain.Dataset) RankingService {
	return &StateRankingService{
		dataset: dataset,
		now:     time.Now,
	}
}

type stateTotals struct {
	sales    decimal.Decimal
	profit   decimal.Decimal
	quantity int
	orders   int
}

// ComputeStateRanking ordena os estados pelo total de vendas (desc) e, no empate, pelo nome
func (s *StateRankingService) ComputeStateRanking() (*domain.StateRankingSnapshot, error) {
	if s.dataset.Len() == 0 {
		return nil, errors.Wrap(domain.ErrEmptyDataset, "ranking")
	}

	totalsByState := make(map[string]*stateTotals)
	s.dataset.ForEach(func(sale domain.Sale) bool {
		totals, ok := totalsByState[sale.State]
		if !ok {
			totals = &stateTotals{sales: decimal.Zero, profit: decimal.Zero}
			totalsByState[sale.State] = totals
		}

		totals.sales = totals.sales.Add(decimal.NewFromFloat(sale.Sales))
		totals.profit = totals.profit.Add(decimal.NewFromFloat(sale.Profit))
		totals.quantity += sale.Quantity
		totals.orders++
		return true
	})

	ranking := make([]domain.StateRankingItem, 0, len(totalsByState))
	for state, totals := range totalsByState {
		ranking = append(ranking, domain.StateRankingItem{
			State:         state,
			TotalSales:    utils.RoundWithTwoDecimalPlace(totals.sales.InexactFloat64()),
			TotalProfit:   utils.RoundWithTwoDecimalPlace(totals.profit.InexactFloat64()),
			TotalQuantity: totals.quantity,
			Orders:        totals.orders,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalSales != ranking[j].TotalSales {
			return ranking[i].TotalSales > ranking[j].TotalSales
		}
		return ranking[i].State < ranking[j].State
	})

	for i := range ranking {
		ranking[i].Position = i + 1
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "ranking: generate snapshot id")
	}

	return &domain.StateRankingSnapshot{
		ID:         id,
		Ranking:    ranking,
		LastUpdate: s.now(),
	}, nil
}
