package workers

import (
	"context"
	"time"

	c "api/internal/cache"
	"api/internal/configuration"
	"api/internal/upstream"
)

// CatalogRefreshWorker keeps the cached school and festival lists warm
// so dashboard filters do not pay the upstream round trip. It queries
// the raw catalog client, a cached client would only read back what is
// already stored.
type CatalogRefreshWorker struct {
	Catalog     upstream.ICatalogClient
	Cache       c.ICache
	TTLSeconds  int
	RunInterval time.Duration
}

func (w *CatalogRefreshWorker) Start(ctx context.Context) {
	StartPeriodicWorker(ctx, "catalog_refresh", w.RunInterval, []WorkerTask{
		{Name: "schools", Fn: w.refreshSchools},
		{Name: "festivals", Fn: w.refreshFestivals},
	})
}

func (w *CatalogRefreshWorker) refreshSchools(ctx context.Context) (int, error) {
	schools, err := w.Catalog.GetSchools(ctx)
	if err != nil {
		return 0, err
	}
	if err = w.Cache.SetJSON(configuration.CacheCatalogSchoolsKey, schools, w.TTLSeconds); err != nil {
		return 0, err
	}
	return len(schools), nil
}

func (w *CatalogRefreshWorker) refreshFestivals(ctx context.Context) (int, error) {
	festivals, err := w.Catalog.GetFestivals(ctx)
	if err != nil {
		return 0, err
	}
	if err = w.Cache.SetJSON(configuration.CacheCatalogFestivalsKey, festivals, w.TTLSeconds); err != nil {
		return 0, err
	}
	return len(festivals), nil
}
