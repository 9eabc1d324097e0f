package querying

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Querier responde às consultas de leitura sobre o dataset
type Querier interface {
	GetSales() []domain.Sale
	GetStates() []string
	GetDateRange(state string) (*domain.DateRange, error)
}

type Service struct {
	dataset *domain.Dataset
}

func NewService(dataset *domain.Dataset) Querier {
	return &Service{dataset: dataset}
}

// GetSales devolve uma cópia do dataset completo
func (s *Service) GetSales() []domain.Sale {
	return s.dataset.Sales()
}

func (s *Service) GetStates() []string {
	return s.dataset.States()
}

// GetDateRange retorna a menor e a maior data de pedido do estado.
// A comparação do estado é exata, sem normalizar maiúsculas ou espaços.
func (s *Service) GetDateRange(state string) (*domain.DateRange, error) {
	if state == "" {
		return nil, domain.ErrStateRequired
	}

	var (
		dateRange domain.DateRange
		found     bool
	)

	s.dataset.ForEach(func(sale domain.Sale) bool {
		if sale.State != state {
			return true
		}

		if !found {
			dateRange = domain.DateRange{MinDate: sale.OrderDate, MaxDate: sale.OrderDate}
			found = true
			return true
		}

		if sale.OrderDate.Before(dateRange.MinDate) {
			dateRange.MinDate = sale.OrderDate
		}
		if sale.OrderDate.After(dateRange.MaxDate) {
			dateRange.MaxDate = sale.OrderDate
		}
		return true
	})

	if !found {
		return nil, errors.Wrapf(domain.ErrStateNotFound, "state %q", state)
	}

	return &dateRange, nil
}
