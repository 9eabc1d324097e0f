package aggregating

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var ErrUnsupportedField = errors.New("unsupported aggregation field")

// TotalForState soma o campo numérico nas vendas do estado.
// Nenhuma venda no estado resulta em 0, não em erro.
func TotalForState(sales []domain.Sale, state, field string) (float64, error) {
	if !domain.IsNumericField(field) {
		return 0, errors.Wrapf(ErrUnsupportedField, "field %q", field)
	}

	total := decimal.Zero
	for _, sale := range sales {
		if sale.State != state {
			continue
		}
		value, _ := sale.NumericField(field)
		total = total.Add(decimal.NewFromFloat(value))
	}

	return total.InexactFloat64(), nil
}

// Summarize calcula os totais das vendas incluídas na seleção
func Summarize(sales []domain.Sale, selection domain.FilterSelection) domain.SalesTotals {
	var (
		orders   int
		revenue  = decimal.Zero
		quantity = decimal.Zero
		discount = decimal.Zero
		profit   = decimal.Zero
	)

	for _, sale := range sales {
		if !selection.Includes(sale) {
			continue
		}
		orders++
		revenue = revenue.Add(decimal.NewFromFloat(sale.Sales))
		quantity = quantity.Add(decimal.NewFromInt(int64(sale.Quantity)))
		discount = discount.Add(decimal.NewFromFloat(sale.Discount))
		profit = profit.Add(decimal.NewFromFloat(sale.Profit))
	}

	return domain.SalesTotals{
		Orders:   orders,
		Sales:    utils.RoundWithTwoDecimalPlace(revenue.InexactFloat64()),
		Quantity: quantity.InexactFloat64(),
		Discount: utils.RoundWithTwoDecimalPlace(discount.InexactFloat64()),
		Profit:   utils.RoundWithTwoDecimalPlace(profit.InexactFloat64()),
	}
}
