package domain

import "encoding/json"

// FilterSelection é a seleção do usuário no dashboard: estado e intervalo [from, to].
// É um valor imutável; cada ação do usuário produz uma nova seleção.
type FilterSelection struct {
	state string
	from  CalendarDate
	to    CalendarDate
}

// NewFilterSelection seleciona o estado com o intervalo completo de datas
func NewFilterSelection(state string, dateRange DateRange) FilterSelection {
	return FilterSelection{
		state: state,
		from:  dateRange.MinDate,
		to:    dateRange.MaxDate,
	}
}

func (f FilterSelection) State() string      { return f.state }
func (f FilterSelection) From() CalendarDate { return f.from }
func (f FilterSelection) To() CalendarDate   { return f.to }

func (f FilterSelection) IsZero() bool {
	return f == FilterSelection{}
}

// WithState troca o estado e reinicia o intervalo para as datas do novo estado
func (f FilterSelection) WithState(state string, dateRange DateRange) FilterSelection {
	return NewFilterSelection(state, dateRange)
}

// WithFrom altera a data inicial; se ela passar da data final, a final acompanha
func (f FilterSelection) WithFrom(from CalendarDate) FilterSelection {
	next := f
	next.from = from
	if !next.to.IsZero() && next.to.Before(from) {
		next.to = from
	}
	return next
}

// WithTo altera a data final; uma data anterior à inicial é ajustada para a inicial
func (f FilterSelection) WithTo(to CalendarDate) FilterSelection {
	next := f
	next.to = to
	if !next.from.IsZero() && to.Before(next.from) {
		next.to = next.from
	}
	return next
}

// Includes indica se a venda pertence ao estado e está dentro do intervalo.
// Limites vazios não restringem.
func (f FilterSelection) Includes(sale Sale) bool {
	if sale.State != f.state {
		return false
	}
	if !f.from.IsZero() && sale.OrderDate.Before(f.from) {
		return false
	}
	if !f.to.IsZero() && sale.OrderDate.After(f.to) {
		return false
	}
	return true
}

func (f FilterSelection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		State string       `json:"state"`
		From  CalendarDate `json:"from"`
		To    CalendarDate `json:"to"`
	}{
		State: f.state,
		From:  f.from,
		To:    f.to,
	})
}
