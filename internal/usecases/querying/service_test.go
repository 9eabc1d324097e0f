package querying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func newTestDataset() *domain.Dataset {
	return domain.NewDataset([]domain.Sale{
		{RowID: 1, State: "California", OrderDate: domain.NewCalendarDate(2017, 3, 10), Sales: 10},
		{RowID: 2, State: "New York", OrderDate: domain.NewCalendarDate(2016, 5, 1), Sales: 7},
		{RowID: 3, State: "California", OrderDate: domain.NewCalendarDate(2015, 1, 2), Sales: 5},
		{RowID: 4, State: "California", OrderDate: domain.NewCalendarDate(2018, 12, 30), Sales: 1},
		{RowID: 5, State: "Texas", OrderDate: domain.NewCalendarDate(2014, 7, 4), Sales: 3},
	})
}

func TestService_GetDateRange(t *testing.T) {
	service := NewService(newTestDataset())

	tests := []struct {
		name    string
		state   string
		want    *domain.DateRange
		wantErr error
	}{
		{
			name:  "Estado com várias vendas",
			state: "California",
			want: &domain.DateRange{
				MinDate: domain.NewCalendarDate(2015, 1, 2),
				MaxDate: domain.NewCalendarDate(2018, 12, 30),
			},
		},
		{
			name:  "Estado com uma venda - min igual a max",
			state: "Texas",
			want: &domain.DateRange{
				MinDate: domain.NewCalendarDate(2014, 7, 4),
				MaxDate: domain.NewCalendarDate(2014, 7, 4),
			},
		},
		{
			name:    "Estado inexistente",
			state:   "Atlantis",
			wantErr: domain.ErrStateNotFound,
		},
		{
			name:    "Comparação exata - sem normalizar caixa",
			state:   "california",
			wantErr: domain.ErrStateNotFound,
		},
		{
			name:    "Comparação exata - sem remover espaços",
			state:   " California",
			wantErr: domain.ErrStateNotFound,
		},
		{
			name:    "Estado vazio",
			state:   "",
			wantErr: domain.ErrStateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.GetDateRange(tt.state)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.MinDate.After(got.MaxDate))
		})
	}
}

func TestService_GetDateRange_Idempotente(t *testing.T) {
	service := NewService(newTestDataset())

	first, err := service.GetDateRange("California")
	require.NoError(t, err)
	second, err := service.GetDateRange("California")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_GetSales(t *testing.T) {
	service := NewService(newTestDataset())

	sales := service.GetSales()
	require.Len(t, sales, 5)

	sales[0].State = "Mutated"

	assert.Equal(t, "California", service.GetSales()[0].State)
}

func TestService_GetStates(t *testing.T) {
	service := NewService(newTestDataset())

	assert.Equal(t, []string{"California", "New York", "Texas"}, service.GetStates())
}
