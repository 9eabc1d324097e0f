package domain

import (
	"bytes"
	"strconv"
)

// Nomes dos campos numéricos agregáveis, iguais às chaves do JSON do dataset
const (
	FieldSales    = "Sales"
	FieldQuantity = "Quantity"
	FieldDiscount = "Discount"
	FieldProfit   = "Profit"
)

var NumericFields = []string{FieldSales, FieldQuantity, FieldDiscount, FieldProfit}

// Sale é uma linha do dataset de vendas. As tags seguem o arquivo sales.json original.
type Sale struct {
	RowID        int          `json:"Row ID"`
	OrderID      string       `json:"Order ID"`
	OrderDate    CalendarDate `json:"Order Date"`
	ShipDate     CalendarDate `json:"Ship Date"`
	ShipMode     string       `json:"Ship Mode"`
	CustomerID   string       `json:"Customer ID"`
	CustomerName string       `json:"Customer Name"`
	Segment      string       `json:"Segment"`
	Country      string       `json:"Country"`
	City         string       `json:"City"`
	State        string       `json:"State"`
	PostalCode   PostalCode   `json:"Postal Code"`
	Region       string       `json:"Region"`
	ProductID    string       `json:"Product ID"`
	Category     string       `json:"Category"`
	SubCategory  string       `json:"Sub-Category"`
	ProductName  string       `json:"Product Name"`
	Sales        float64      `json:"Sales"`
	Quantity     int          `json:"Quantity"`
	Discount     float64      `json:"Discount"`
	Profit       float64      `json:"Profit"`
}

// NumericField retorna o valor do campo numérico pelo nome da chave JSON
func (s Sale) NumericField(name string) (float64, bool) {
	switch name {
	case FieldSales:
		return s.Sales, true
	case FieldQuantity:
		return float64(s.Quantity), true
	case FieldDiscount:
		return s.Discount, true
	case FieldProfit:
		return s.Profit, true
	default:
		return 0, false
	}
}

func IsNumericField(name string) bool {
	_, ok := Sale{}.NumericField(name)
	return ok
}

// PostalCode aceita tanto número quanto string no JSON (o dataset usa números)
type PostalCode string

func (p *PostalCode) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		raw, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*p = PostalCode(raw)
		return nil
	}

	*p = PostalCode(data)
	return nil
}
