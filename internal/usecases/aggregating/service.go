package aggregating

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Aggregator aplica as agregações sobre o dataset carregado
type Aggregator interface {
	TotalForState(state, field string) (float64, error)
	Summarize(selection domain.FilterSelection) *domain.SalesSummary
}

type Service struct {
	dataset *domain.Dataset
}

func NewService(dataset *domain.Dataset) Aggregator {
	return &Service{dataset: dataset}
}

func (s *Service) TotalForState(state, field string) (float64, error) {
	return TotalForState(s.dataset.Sales(), state, field)
}

func (s *Service) Summarize(selection domain.FilterSelection) *domain.SalesSummary {
	return &domain.SalesSummary{
		Selection: selection,
		Totals:    Summarize(s.dataset.Sales(), selection),
	}
}
