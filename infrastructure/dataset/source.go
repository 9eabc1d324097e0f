// Package dataset carrega o dataset de vendas a partir das origens configuradas
package dataset

import (
	"context"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source é uma origem de vendas lida uma única vez na inicialização
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.Sale, error)
}

// NewSource escolhe a origem conforme DATASET_SOURCE
func NewSource(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.Dataset.Source {
	case config.DatasetSourceFile:
		return NewFileSource(cfg.Dataset.Path), nil
	case config.DatasetSourceS3:
		return NewS3Source(ctx, cfg.Dataset)
	case config.DatasetSourcePostgres:
		return NewPostgresSource(cfg.Database, cfg.Dataset.Table), nil
	default:
		return nil, errors.Errorf("dataset: unknown source %q", cfg.Dataset.Source)
	}
}

// decodeSales lê um array JSON de vendas no formato do sales.json
func decodeSales(r io.Reader) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := json.NewDecoder(r).Decode(&sales); err != nil {
		return nil, errors.Wrap(err, "dataset: decode sales")
	}
	return sales, nil
}
