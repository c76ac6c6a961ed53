package core

import (
	c "api/internal/cache"
	"api/internal/configuration"
	"api/internal/models"
	"api/internal/upstream"

	"go.uber.org/zap"
)

// NewStatisticsSource builds the statistics client selected by the
// configuration, falling back to the demo fixtures for any non-rest type.
func NewStatisticsSource(config models.StatisticsConfiguration) upstream.IStatisticsClient {
	switch config.Type {
	case configuration.SourceREST:
		zap.L().Info("Using REST statistics source", zap.String("base_url", config.BaseURL))
		return upstream.NewStatisticsClient(config)
	default:
		zap.L().Info("Using demo statistics source")
		return upstream.DemoStatisticsClient{}
	}
}

// NewCatalogSource builds the raw catalog client without any caching
// layer. Workers refresh through the raw client so cached reads never
// shadow an upstream change.
func NewCatalogSource(config models.CatalogConfiguration) upstream.ICatalogClient {
	switch config.Type {
	case configuration.SourceREST:
		zap.L().Info("Using REST catalog source", zap.String("base_url", config.BaseURL))
		return upstream.NewCatalogClient(config)
	default:
		zap.L().Info("Using demo catalog source")
		return upstream.DemoCatalogClient{}
	}
}

// WrapCatalogCache decorates the catalog client with cache reads when a
// cache backend is configured.
func WrapCatalogCache(client upstream.ICatalogClient, cache c.ICache, config models.CatalogConfiguration) upstream.ICatalogClient {
	if cache == nil {
		return client
	}
	return &upstream.CachedCatalog{
		Inner:      client,
		Cache:      cache,
		TTLSeconds: config.CacheTTLSeconds,
	}
}
