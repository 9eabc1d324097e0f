package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestBuildInsert(t *testing.T) {
	sales := []domain.Sale{
		{RowID: 1, OrderID: "CA-1", OrderDate: domain.NewCalendarDate(2016, 11, 8), ShipDate: domain.NewCalendarDate(2016, 11, 11), State: "Kentucky", PostalCode: "42420", Sales: 261.96, Quantity: 2},
		{RowID: 2, OrderID: "CA-2", OrderDate: domain.NewCalendarDate(2016, 6, 12), State: "California"},
	}

	query, args, err := buildInsert("sales", sales)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO sales (row_id,order_id,order_date"))
	assert.Contains(t, query, "$42")
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (row_id) DO NOTHING"))
	require.Len(t, args, 2*len(insertColumns))

	assert.Equal(t, 1, args[0])
	assert.Equal(t, domain.NewCalendarDate(2016, 11, 11).Time(), args[3])
	assert.Equal(t, "42420", args[11])
	assert.Nil(t, args[len(insertColumns)+3])
}

func TestCreateTableSQL(t *testing.T) {
	query := createTableSQL("sales_2017")

	assert.True(t, strings.HasPrefix(query, "CREATE TABLE IF NOT EXISTS sales_2017 ("))
	for _, column := range insertColumns {
		assert.Contains(t, query, column)
	}
}

func TestNewSeedCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    seedOptions
		wantErr bool
	}{
		{name: "valores padrão", args: []string{}, want: seedOptions{file: "data/sales.json"}},
		{name: "arquivo e truncate", args: []string{"--file", "/tmp/superstore.json", "--truncate"}, want: seedOptions{file: "/tmp/superstore.json", truncate: true}},
		{name: "argumento posicional", args: []string{"data/sales.json"}, wantErr: true},
		{name: "flag desconhecida", args: []string{"-table", "sales"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got seedOptions
			called := false

			cmd := newSeedCmd(func(_ context.Context, opts seedOptions) error {
				called = true
				got = opts
				return nil
			})
			cmd.SetArgs(tt.args)

			err := cmd.ExecuteContext(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, called)
				return
			}

			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.want, got)
		})
	}
}
