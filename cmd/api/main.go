package main

import (
	"context"

	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/instagram-insights-api/infrastructure/repository"
	"github.com/vfg2006/instagram-insights-api/internal/api"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/scheduler"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("config: failed to load configuration")
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := repository.NewRecordStore(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("storage: failed to initialize record store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.L.WithError(err).Warn("storage: failed to close record store")
		}
	}()
	log.L.WithField("driver", cfg.Storage.Driver).Info("storage: record store ready")

	if cfg.Instagram.AccessToken == "" {
		log.L.Warn("config: INSTAGRAM_ACCESS_TOKEN is empty, insights requests must send access_token")
	}

	client := igclient.NewClient(cfg)

	insightService := insighting.NewService(cfg, client)
	aggregator := aggregating.NewService(cfg, instagram.New(cfg, client), store)
	authenticator := authenticating.NewService(cfg)

	syncService := scheduler.NewAggregationSyncService(aggregator, cfg)
	if err := syncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("scheduler: failed to start aggregation sync")
	}

	server := api.New(cfg, insightService, aggregator, authenticator, syncService)
	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("server: stopped with error")
	}
}
