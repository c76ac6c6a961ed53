package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"api/internal/aggregator"
	c "api/internal/cache"
	"api/internal/configuration"
	m "api/internal/middlewares"
	"api/internal/models"
	"api/internal/reporting"
	"api/internal/services"
	"api/internal/upstream"
	"api/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func StartWorkers(
	profile models.Profile,
	catalog upstream.ICatalogClient,
	cache c.ICache,
	config models.Configuration,
	appIdentity string,
) {
	if cache == nil {
		zap.L().Info("Skipping catalog refresh worker, no cache configured")
		return
	}

	startWorker(profile.Workers.CatalogRefresh, "catalog_refresh", cache, appIdentity, func(ctx context.Context) {
		worker := &workers.CatalogRefreshWorker{
			Catalog:     catalog,
			Cache:       cache,
			TTLSeconds:  config.Upstream.Catalog.CacheTTLSeconds,
			RunInterval: time.Duration(config.Upstream.Catalog.RefreshIntervalSeconds) * time.Second,
		}
		worker.Start(ctx)
	})
}

func startWorker(
	mode models.WorkerMode,
	workerName string,
	cache c.ICache,
	appIdentity string,
	runWorker func(context.Context),
) {
	if mode == models.WorkerModeDisabled {
		return
	}

	if mode == models.WorkerModeSingleton {
		go startSingletonWorker(cache, appIdentity, workerName, runWorker)
	} else {
		go runWorker(context.Background())
		zap.L().Info("Started worker", zap.String("worker", workerName))
	}
}

func startSingletonWorker(cache c.ICache, instanceID string, workerName string, runWorker func(context.Context)) {
	lockKey := fmt.Sprintf(configuration.CacheAppWorkerLockKey, workerName)
	ticker := time.NewTicker(time.Duration(configuration.CacheAppWorkerLockRefresh) * time.Second)
	defer ticker.Stop()

	var workerStarted bool
	var cancelWorker context.CancelFunc

	for {
		if !workerStarted {
			acquired, err := cache.TryAcquireLock(lockKey, instanceID, configuration.CacheAppWorkerLockTTL)
			if err != nil {
				zap.L().Error("Failed to acquire worker lock", zap.String("worker", workerName), zap.Error(err))
			}

			if acquired {
				zap.L().Info("Acquired worker lock, starting worker", zap.String("worker", workerName))
				workerStarted = true
				var ctx context.Context
				ctx, cancelWorker = context.WithCancel(context.Background())
				go runWorker(ctx)
			}
		} else {
			refreshed, err := cache.RefreshLock(lockKey, instanceID, configuration.CacheAppWorkerLockTTL)
			if err != nil || !refreshed {
				zap.L().Warn("Lost worker lock, stopping worker", zap.String("worker", workerName))
				workerStarted = false
				if cancelWorker != nil {
					cancelWorker()
					cancelWorker = nil
				}
			}
		}

		<-ticker.C
	}
}

func StartHTTPServer(
	config models.Configuration,
	stats upstream.IStatisticsClient,
	catalog upstream.ICatalogClient,
) {
	r := chi.NewRouter()

	// Dashboard loads fan out to several upstream calls, so the
	// request timeout leaves room for upstream retries.
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	fallback := reporting.MockSeriesSource{HorizonDays: configuration.MockSeriesHorizonDays}

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Get("/v1/timeranges", services.GetTimeRanges)

		apiRouter.Mount("/v1/catalog", services.CatalogService{
			Catalog: catalog,
		}.Routes())

		apiRouter.Mount("/v1/dashboards", services.DashboardService{
			Catalog: catalog,
			Admin:   &aggregator.AdminAggregator{Stats: stats, Fallback: fallback},
			School:  &aggregator.SchoolAggregator{Stats: stats, Fallback: fallback},
		}.Routes())
	})

	var handler http.Handler = r
	if config.Tracing.Enabled {
		handler = otelhttp.NewHandler(r, "http.server")
	}

	zap.L().Info("HTTP server starting", zap.Int("port", config.App.Port))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.App.Port),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	err := server.ListenAndServe()
	if err != nil {
		zap.L().Error("Failed to start the app", zap.Error(err))
	}
}
