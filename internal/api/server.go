package api

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// Services agrupa as dependências dos handlers
type Services struct {
	Dataset          *domain.Dataset
	Querier          querying.Querier
	Aggregator       aggregating.Aggregator
	StateRankingSync *scheduler.StateRankingSyncService
}

func New(config *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(config.Server.Host, config.Server.Port),
			Handler:           NewHandler(services),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}
}

// NewHandler monta o router com a cadeia de middlewares
func NewHandler(services Services) http.Handler {
	options := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.Dataset)...),
		router.WithRoutes(handler.Sales(services.Querier)...),
		router.WithRoutes(handler.Totals(services.Aggregator)...),
	}

	// Um *StateRankingSyncService nil viraria uma interface não nil nos handlers
	cronJobs := handler.CronJobServices{}
	if services.StateRankingSync != nil {
		options = append(options, router.WithRoutes(handler.StateRanking(services.StateRankingSync)...))
		cronJobs = handler.NewCronJobServices(services.StateRankingSync)
	}
	options = append(options, router.WithRoutes(handler.CronJobs(cronJobs)...))

	rt := router.New(options...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err := <-serveErr:
		log.L.WithError(err).WithField("address", s.httpServer.Addr).Error("server: listen and serve")
		return errors.Wrapf(err, "server: listen on %s", s.httpServer.Addr)
	case <-done:
		log.L.Info("server: interrupt signal received")
	case <-ctx.Done():
		log.L.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", s.shutdownTimeout.String()).Info("server: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server: shutdown")
		return err
	}

	log.L.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
