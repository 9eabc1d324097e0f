package dataset

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var ErrMalformedRecord = errors.New("malformed sale record")

// Load lê a origem uma vez e devolve o dataset imutável.
// Dataset vazio ou com registros sem estado/data de pedido é um erro.
func Load(ctx context.Context, source Source) (*domain.Dataset, error) {
	start := time.Now()

	sales, err := source.Load(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: load from %s", source.Name())
	}

	if len(sales) == 0 {
		return nil, errors.Wrapf(domain.ErrEmptyDataset, "dataset: %s", source.Name())
	}

	if err := validateSales(sales); err != nil {
		return nil, errors.Wrapf(err, "dataset: %s", source.Name())
	}

	dataset := domain.NewDataset(sales)

	log.L.WithFields(log.Fields{
		"source":           source.Name(),
		"records":          dataset.Len(),
		"dataset_states":   len(dataset.States()),
		"dataset_duration": time.Since(start).String(),
	}).Info("dataset loaded")

	return dataset, nil
}

func validateSales(sales []domain.Sale) error {
	for i, sale := range sales {
		if sale.State == "" {
			return errors.Wrapf(ErrMalformedRecord, "record %d: missing State", i)
		}
		if sale.OrderDate.IsZero() {
			return errors.Wrapf(ErrMalformedRecord, "record %d: missing Order Date", i)
		}
	}
	return nil
}
