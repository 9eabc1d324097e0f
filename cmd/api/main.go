package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ranking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, err := dataset.NewSource(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("sales: configure dataset source")
	}

	// Sem dataset não há o que servir
	salesDataset, err := dataset.Load(ctx, source)
	if err != nil {
		logrus.WithError(err).Fatal("sales: load dataset")
	}

	querier := querying.NewService(salesDataset)
	aggregator := aggregating.NewService(salesDataset)
	rankingService := ranking.NewStateRankingService(salesDataset)

	stateRankingSync := scheduler.NewStateRankingSyncService(rankingService, cfg)
	if err := stateRankingSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("scheduler: start state ranking sync")
	}

	server := api.New(cfg, api.Services{
		Dataset:          salesDataset,
		Querier:          querier,
		Aggregator:       aggregator,
		StateRankingSync: stateRankingSync,
	})

	if err := server.Run(ctx); err != nil {
		cancel()
		logrus.Fatal(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
