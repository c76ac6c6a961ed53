package main

import (
	"context"

	"api/internal/configuration"
	"api/internal/core"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	profile := configuration.GetProfile(config.App.Profile)

	shutdownTracing := core.InitTracing(config.Tracing)
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	core.StartProfiling(config.Profiling)

	cache := core.NewCache(config.Cache)
	stats := core.NewStatisticsSource(config.Upstream.Statistics)
	rawCatalog := core.NewCatalogSource(config.Upstream.Catalog)
	catalog := core.WrapCatalogCache(rawCatalog, cache, config.Upstream.Catalog)

	appIdentity := uuid.New().String()

	if cache != nil {
		go cache.StartIdentityTicker(appIdentity)
		zap.L().Info("Cache identity ticker started")
	}

	if profile.Workers.AnyEnabled() {
		core.StartWorkers(profile, rawCatalog, cache, config, appIdentity)
	}

	if profile.HTTPServer {
		core.StartHTTPServer(config, stats, catalog)
	} else if profile.Workers.AnyEnabled() {
		zap.L().Info("Running in worker-only mode")
		select {} // Block forever
	}
}
