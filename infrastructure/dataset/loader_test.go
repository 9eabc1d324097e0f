package dataset

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestLoad(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validSales := []domain.Sale{
		{RowID: 1, State: "California", OrderDate: domain.NewCalendarDate(2017, 1, 1), Sales: 10},
		{RowID: 2, State: "New York", OrderDate: domain.NewCalendarDate(2017, 1, 2), Sales: 7},
	}

	tests := []struct {
		name    string
		setup   func(source *mocks.MockSource)
		wantErr error
		wantLen int
	}{
		{
			name: "Dataset válido",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Load(gomock.Any()).Return(validSales, nil)
				source.EXPECT().Name().Return("file://sales.json").AnyTimes()
			},
			wantLen: 2,
		},
		{
			name: "Dataset vazio",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Load(gomock.Any()).Return([]domain.Sale{}, nil)
				source.EXPECT().Name().Return("file://sales.json").AnyTimes()
			},
			wantErr: domain.ErrEmptyDataset,
		},
		{
			name: "Registro sem estado",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Load(gomock.Any()).Return([]domain.Sale{
					{RowID: 1, OrderDate: domain.NewCalendarDate(2017, 1, 1)},
				}, nil)
				source.EXPECT().Name().Return("file://sales.json").AnyTimes()
			},
			wantErr: ErrMalformedRecord,
		},
		{
			name: "Registro sem data de pedido",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Load(gomock.Any()).Return([]domain.Sale{
					{RowID: 1, State: "Texas"},
				}, nil)
				source.EXPECT().Name().Return("file://sales.json").AnyTimes()
			},
			wantErr: ErrMalformedRecord,
		},
		{
			name: "Falha na origem",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("connection refused"))
				source.EXPECT().Name().Return("postgres://sales").AnyTimes()
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewMockSource(ctrl)
			tt.setup(source)

			dataset, err := Load(context.Background(), source)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, dataset)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, dataset.Len())
		})
	}
}

func TestLoad_ErrosIdentificaveis(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(nil, nil)
	source.EXPECT().Name().Return("s3://bucket/sales.json").AnyTimes()

	_, err := Load(context.Background(), source)

	assert.True(t, errors.Is(err, domain.ErrEmptyDataset))
}
