// Script de carga: copia o sales.json para a tabela lida por DATASET_SOURCE=postgres.
//
//	go run ./infrastructure/migration/script --file data/sales.json
package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const batchSize = 500

var insertColumns = []string{
	"row_id", "order_id", "order_date", "ship_date", "ship_mode",
	"customer_id", "customer_name", "segment", "country", "city",
	"state", "postal_code", "region", "product_id", "category",
	"sub_category", "product_name", "sales", "quantity", "discount", "profit",
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})

	if err := newSeedCmd(run).ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("seed: failed")
	}
}

type seedOptions struct {
	file     string
	truncate bool
}

func newSeedCmd(runSeed func(ctx context.Context, opts seedOptions) error) *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sales JSON dataset into the Postgres table read by DATASET_SOURCE=postgres",
		Example: `  go run ./infrastructure/migration/script --file data/sales.json
  go run ./infrastructure/migration/script --truncate`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "data/sales.json", "Dataset JSON file")
	cmd.Flags().BoolVar(&opts.truncate, "truncate", false, "Delete existing rows before loading")

	return cmd
}

func run(ctx context.Context, opts seedOptions) error {
	logrus.Info("seed: starting")

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	sales, err := dataset.Load(ctx, dataset.NewFileSource(opts.file))
	if err != nil {
		return errors.Wrap(err, "read dataset")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	defer conn.Close()

	table := cfg.Dataset.Table
	start := time.Now()

	if err := seed(ctx, conn.DB, table, sales.Sales(), opts.truncate); err != nil {
		return errors.Wrap(err, "load table")
	}

	logrus.WithFields(logrus.Fields{
		"table":    table,
		"records":  sales.Len(),
		"duration": time.Since(start).String(),
	}).Info("seed: completed")

	return nil
}

func seed(ctx context.Context, db *sql.DB, table string, sales []domain.Sale, truncate bool) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, createTableSQL(table)); err != nil {
		return errors.Wrapf(err, "create table %s", table)
	}

	if truncate {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return errors.Wrapf(err, "truncate table %s", table)
		}
	}

	for start := 0; start < len(sales); start += batchSize {
		end := min(start+batchSize, len(sales))

		query, args, err := buildInsert(table, sales[start:end])
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "insert rows %d-%d", start+1, end)
		}

		logrus.Infof("seed: progress %d/%d", end, len(sales))
	}

	return errors.Wrap(tx.Commit(), "commit")
}

func createTableSQL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	row_id        INTEGER PRIMARY KEY,
	order_id      VARCHAR(32) NOT NULL,
	order_date    DATE NOT NULL,
	ship_date     DATE,
	ship_mode     VARCHAR(32),
	customer_id   VARCHAR(32),
	customer_name VARCHAR(128),
	segment       VARCHAR(32),
	country       VARCHAR(64),
	city          VARCHAR(64),
	state         VARCHAR(64) NOT NULL,
	postal_code   VARCHAR(16),
	region        VARCHAR(32),
	product_id    VARCHAR(32),
	category      VARCHAR(64),
	sub_category  VARCHAR(64),
	product_name  TEXT,
	sales         NUMERIC(14, 4) NOT NULL DEFAULT 0,
	quantity      INTEGER NOT NULL DEFAULT 0,
	discount      NUMERIC(6, 4) NOT NULL DEFAULT 0,
	profit        NUMERIC(14, 4) NOT NULL DEFAULT 0
)`, table)
}

// buildInsert gera um INSERT multi-linha; linhas já existentes são ignoradas
func buildInsert(table string, sales []domain.Sale) (string, []any, error) {
	insert := squirrel.Insert(table).
		Columns(insertColumns...).
		Suffix("ON CONFLICT (row_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, sale := range sales {
		var shipDate any
		if !sale.ShipDate.IsZero() {
			shipDate = sale.ShipDate.Time()
		}

		insert = insert.Values(
			sale.RowID, sale.OrderID, sale.OrderDate.Time(), shipDate, sale.ShipMode,
			sale.CustomerID, sale.CustomerName, sale.Segment, sale.Country, sale.City,
			sale.State, string(sale.PostalCode), sale.Region, sale.ProductID, sale.Category,
			sale.SubCategory, sale.ProductName, sale.Sales, sale.Quantity, sale.Discount, sale.Profit,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "build insert")
	}
	return query, args, nil
}
