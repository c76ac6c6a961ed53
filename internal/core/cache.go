package core

import (
	c "api/internal/cache"
	"api/internal/models"

	"go.uber.org/zap"
)

// NewCache builds the configured cache backend. Returns nil when
// caching is disabled, callers must tolerate a missing cache.
func NewCache(config models.CacheConfiguration) c.ICache {
	switch config.Type {
	case "redis":
		cacheClient, err := c.NewRueidisCache(
			config.Redis.Hosts,
			config.Redis.Password,
			config.Redis.TLSEnabled,
			config.Redis.TLSServerName,
			"redis cache",
		)
		if err != nil {
			zap.L().Fatal("Failed to connect to cache", zap.Error(err))
		}
		return cacheClient
	case "valkey":
		cacheClient, err := c.NewRueidisCache(
			config.Valkey.Hosts,
			config.Valkey.Password,
			config.Valkey.TLSEnabled,
			config.Valkey.TLSServerName,
			"valkey cache",
		)
		if err != nil {
			zap.L().Fatal("Failed to connect to cache", zap.Error(err))
		}
		return cacheClient
	default:
		return nil
	}
}
