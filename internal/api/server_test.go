package api

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func newTestServices() Services {
	dataset := domain.NewDataset([]domain.Sale{
		{RowID: 1, State: "California", OrderDate: domain.NewCalendarDate(2017, 1, 5), Sales: 10},
	})

	cfg := &config.Config{StateRankingSync: config.StateRankingSync{CronSchedule: "0 * * * *"}}

	return Services{
		Dataset:          dataset,
		Querier:          querying.NewService(dataset),
		Aggregator:       aggregating.NewService(dataset),
		StateRankingSync: scheduler.NewStateRankingSyncService(ranking.NewStateRankingService(dataset), cfg),
	}
}

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()
	h := NewHandler(newTestServices())

	t.Run("Preflight CORS", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/sales", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Ranking calculado sob demanda", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ranking", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"state":"California"`)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNew(t *testing.T) {
	cfg := &config.Config{Server: config.Server{Host: "127.0.0.1", Port: "6001", ShutdownTimeout: 5 * time.Second}}

	srv := New(cfg, newTestServices())

	assert.Equal(t, "127.0.0.1:6001", srv.httpServer.Addr)
	assert.Equal(t, 5*time.Second, srv.shutdownTimeout)
}

func TestNewHandler_SemSincronizacaoDoRanking(t *testing.T) {
	log.SetupTestLogger()
	services := newTestServices()
	services.StateRankingSync = nil
	h := NewHandler(services)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "ranking não registrado", method: http.MethodGet, path: "/api/ranking", wantStatus: http.StatusNotFound, wantBody: `"code":"RTE_001"`},
		{name: "status sem jobs", method: http.MethodGet, path: "/api/cron/status", wantStatus: http.StatusOK, wantBody: `{}`},
		{name: "disparo de job inexistente", method: http.MethodPost, path: "/api/cron/run/state-ranking", wantStatus: http.StatusBadRequest, wantBody: `"code":"VAL_001"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			assert.NotPanics(t, func() {
				h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestServer_Run(t *testing.T) {
	log.SetupTestLogger()

	t.Run("Porta ocupada retorna erro", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer listener.Close()

		host, port, err := net.SplitHostPort(listener.Addr().String())
		require.NoError(t, err)

		cfg := &config.Config{Server: config.Server{Host: host, Port: port, ShutdownTimeout: time.Second}}
		srv := New(cfg, newTestServices())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		start := time.Now()
		err = srv.Run(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address already in use")
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("Contexto cancelado encerra sem erro", func(t *testing.T) {
		cfg := &config.Config{Server: config.Server{Host: "127.0.0.1", Port: "0", ShutdownTimeout: time.Second}}
		srv := New(cfg, newTestServices())

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		assert.NoError(t, srv.Run(ctx))
	})
}
