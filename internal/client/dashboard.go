package client

import (
	"context"
	"sync"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Dashboard guarda o estado da tela: vendas, estados, seleção e opções de data.
// Falhas de rede são registradas e mantêm o estado anterior; não há retry.
type Dashboard struct {
	api API

	mu          sync.RWMutex
	sales       []domain.Sale
	states      []string
	dateRange   domain.DateRange
	dateOptions []string
	selection   domain.FilterSelection
	loading     bool
}

// View é o que a tela exibe para a seleção atual
type View struct {
	Loading     bool                   `json:"loading"`
	States      []string               `json:"states"`
	Selection   domain.FilterSelection `json:"selection"`
	FromOptions []string               `json:"fromOptions"`
	ToOptions   []string               `json:"toOptions"`
	Totals      domain.SalesTotals     `json:"totals"`
}

func NewDashboard(api API) *Dashboard {
	return &Dashboard{api: api}
}

// Load busca o dataset e seleciona o primeiro estado
func (d *Dashboard) Load(ctx context.Context) error {
	d.setLoading(true)
	defer d.setLoading(false)

	sales, err := d.api.GetSales(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: fetch sales")
		return err
	}

	states := domain.DistinctStates(sales)
	log.ForContext(ctx).WithField("records", len(sales)).Info("dashboard: sales loaded")

	// Vendas, estados e seleção mudam juntos; falha no intervalo preserva a tela anterior
	if len(states) == 0 {
		d.mu.Lock()
		d.sales = sales
		d.states = states
		d.mu.Unlock()
		return nil
	}

	dateRange, options, err := d.fetchDateRange(ctx, states[0])
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.sales = sales
	d.states = states
	d.applyState(states[0], dateRange, options)
	d.mu.Unlock()

	return nil
}

// SelectState busca o intervalo do estado e reinicia from/to para min/max
func (d *Dashboard) SelectState(ctx context.Context, state string) error {
	d.setLoading(true)
	defer d.setLoading(false)

	dateRange, options, err := d.fetchDateRange(ctx, state)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.applyState(state, dateRange, options)
	d.mu.Unlock()

	return nil
}

func (d *Dashboard) fetchDateRange(ctx context.Context, state string) (domain.DateRange, []string, error) {
	dateRange, err := d.api.GetDateRange(ctx, state)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("state", state).Error("dashboard: fetch date range")
		return domain.DateRange{}, nil, err
	}

	options, err := dateRange.Expand()
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("state", state).Error("dashboard: expand date range")
		return domain.DateRange{}, nil, err
	}

	return *dateRange, options, nil
}

// applyState exige d.mu travado
func (d *Dashboard) applyState(state string, dateRange domain.DateRange, options []string) {
	d.dateRange = dateRange
	d.dateOptions = options
	d.selection = d.selection.WithState(state, dateRange)
}

// SelectFrom altera a data inicial dentro do intervalo do estado
func (d *Dashboard) SelectFrom(date domain.CalendarDate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkDate(date); err != nil {
		return err
	}

	d.selection = d.selection.WithFrom(date)
	return nil
}

// SelectTo altera a data final; datas anteriores à inicial são ajustadas para ela
func (d *Dashboard) SelectTo(date domain.CalendarDate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkDate(date); err != nil {
		return err
	}

	d.selection = d.selection.WithTo(date)
	return nil
}

func (d *Dashboard) checkDate(date domain.CalendarDate) error {
	if d.selection.IsZero() {
		return domain.ErrStateRequired
	}
	if !d.dateRange.Contains(date) {
		return domain.ErrDateOutOfRange
	}
	return nil
}

func (d *Dashboard) Selection() domain.FilterSelection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.selection
}

func (d *Dashboard) View() View {
	d.mu.RLock()
	defer d.mu.RUnlock()

	view := View{
		Loading:     d.loading,
		States:      append([]string(nil), d.states...),
		Selection:   d.selection,
		FromOptions: append([]string(nil), d.dateOptions...),
		ToOptions:   d.toOptions(),
	}
	if !d.selection.IsZero() {
		view.Totals = aggregating.Summarize(d.sales, d.selection)
	}

	return view
}

// toOptions lista apenas as datas a partir de "from"
func (d *Dashboard) toOptions() []string {
	from := d.selection.From()
	if from.IsZero() {
		return append([]string(nil), d.dateOptions...)
	}

	options := make([]string, 0, len(d.dateOptions))
	for _, option := range d.dateOptions {
		if option >= from.String() {
			options = append(options, option)
		}
	}
	return options
}

func (d *Dashboard) setLoading(loading bool) {
	d.mu.Lock()
	d.loading = loading
	d.mu.Unlock()
}
