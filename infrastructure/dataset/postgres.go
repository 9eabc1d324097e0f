package dataset

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var salesColumns = []string{
	"row_id",
	"order_id",
	"order_date",
	"ship_date",
	"ship_mode",
	"customer_id",
	"customer_name",
	"segment",
	"country",
	"city",
	"state",
	"postal_code",
	"region",
	"product_id",
	"category",
	"sub_category",
	"product_name",
	"sales",
	"quantity",
	"discount",
	"profit",
}

// PostgresSource lê o dataset de uma tabela com as mesmas colunas do sales.json
type PostgresSource struct {
	db    config.Database
	table string
}

func NewPostgresSource(db config.Database, table string) *PostgresSource {
	return &PostgresSource{
		db:    db,
		table: table,
	}
}

func (s *PostgresSource) Name() string {
	return "postgres://" + s.table
}

// Load abre uma conexão só para a leitura inicial e a fecha em seguida
func (s *PostgresSource) Load(ctx context.Context) ([]domain.Sale, error) {
	conn, err := postgres.NewConnection(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return querySales(ctx, conn, s.table)
}

func buildSalesQuery(table string) (string, []any, error) {
	return squirrel.
		Select(salesColumns...).
		From(table).
		OrderBy("row_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func querySales(ctx context.Context, q postgres.Queryer, table string) ([]domain.Sale, error) {
	sqlQuery, args, err := buildSalesQuery(table)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: build sales query")
	}

	rows, err := q.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: query sales")
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var (
			sale       domain.Sale
			orderDate  time.Time
			shipDate   sql.NullTime
			postalCode sql.NullString
		)

		err := rows.Scan(
			&sale.RowID,
			&sale.OrderID,
			&orderDate,
			&shipDate,
			&sale.ShipMode,
			&sale.CustomerID,
			&sale.CustomerName,
			&sale.Segment,
			&sale.Country,
			&sale.City,
			&sale.State,
			&postalCode,
			&sale.Region,
			&sale.ProductID,
			&sale.Category,
			&sale.SubCategory,
			&sale.ProductName,
			&sale.Sales,
			&sale.Quantity,
			&sale.Discount,
			&sale.Profit,
		)
		if err != nil {
			return nil, errors.Wrap(err, "dataset: scan sale")
		}

		sale.OrderDate = domain.CalendarDateOf(orderDate)
		if shipDate.Valid {
			sale.ShipDate = domain.CalendarDateOf(shipDate.Time)
		}
		sale.PostalCode = domain.PostalCode(postalCode.String)

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "dataset: iterate sales")
	}

	return sales, nil
}
