package domain

import "fmt"

// DateRange é o intervalo fechado [MinDate, MaxDate] das datas de pedido de um estado
type DateRange struct {
	MinDate CalendarDate `json:"minDate"`
	MaxDate CalendarDate `json:"maxDate"`
}

func (r DateRange) Contains(date CalendarDate) bool {
	return !date.Before(r.MinDate) && !date.After(r.MaxDate)
}

// Expand retorna todas as datas do intervalo no formato YYYY-MM-DD
func (r DateRange) Expand() ([]string, error) {
	return ExpandDates(r.MinDate, r.MaxDate)
}

// ExpandDates gera cada dia de start até end, inclusive.
// Um intervalo invertido (start > end) é rejeitado com ErrInvalidDateRange.
func ExpandDates(start, end CalendarDate) ([]string, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}

	days := start.DaysUntil(end) + 1
	dates := make([]string, 0, days)
	for date := start; !date.After(end); date = date.AddDays(1) {
		dates = append(dates, date.String())
	}

	return dates, nil
}
