package core

import (
	"api/internal/configuration"
	"api/internal/models"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// StartProfiling attaches the pyroscope profiler when enabled.
func StartProfiling(config models.ProfilingConfiguration) {
	if !config.Enabled {
		return
	}

	_, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: configuration.AppName,
		ServerAddress:   config.ServerAddress,
		Logger:          nil,
	})
	if err != nil {
		zap.L().Error("Failed to start profiler", zap.Error(err))
		return
	}
	zap.L().Info("Profiling enabled", zap.String("server", config.ServerAddress))
}
