package upstream

import (
	"context"

	c "api/internal/cache"
	"api/internal/configuration"
	"api/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// CatalogClient fetches school and festival lists from the catalog
// service.
type CatalogClient struct {
	client *resty.Client
}

func NewCatalogClient(config models.CatalogConfiguration) *CatalogClient {
	return &CatalogClient{client: newRESTClient(config.BaseURL, config.TimeoutSeconds, 1)}
}

func (cl *CatalogClient) GetSchools(ctx context.Context) ([]models.School, error) {
	return getData[[]models.School](ctx, cl.client, "/v1/schools", nil)
}

func (cl *CatalogClient) GetFestivals(ctx context.Context) ([]models.Festival, error) {
	return getData[[]models.Festival](ctx, cl.client, "/v1/festivals", nil)
}

// CachedCatalog decorates a catalog client with a shared cache. Catalog
// lists change rarely compared to how often dashboards reload them; the
// dashboard aggregates themselves are never cached.
type CachedCatalog struct {
	Inner      ICatalogClient
	Cache      c.ICache
	TTLSeconds int
}

func (cc *CachedCatalog) GetSchools(ctx context.Context) ([]models.School, error) {
	var schools []models.School
	if ok, err := cc.Cache.GetJSON(configuration.CacheCatalogSchoolsKey, &schools); err != nil {
		zap.L().Warn("Failed to read schools from cache", zap.Error(err))
	} else if ok {
		return schools, nil
	}

	schools, err := cc.Inner.GetSchools(ctx)
	if err != nil {
		return nil, err
	}

	if err := cc.Cache.SetJSON(configuration.CacheCatalogSchoolsKey, schools, cc.TTLSeconds); err != nil {
		zap.L().Warn("Failed to cache schools", zap.Error(err))
	}
	return schools, nil
}

func (cc *CachedCatalog) GetFestivals(ctx context.Context) ([]models.Festival, error) {
	var festivals []models.Festival
	if ok, err := cc.Cache.GetJSON(configuration.CacheCatalogFestivalsKey, &festivals); err != nil {
		zap.L().Warn("Failed to read festivals from cache", zap.Error(err))
	} else if ok {
		return festivals, nil
	}

	festivals, err := cc.Inner.GetFestivals(ctx)
	if err != nil {
		return nil, err
	}

	if err := cc.Cache.SetJSON(configuration.CacheCatalogFestivalsKey, festivals, cc.TTLSeconds); err != nil {
		zap.L().Warn("Failed to cache festivals", zap.Error(err))
	}
	return festivals, nil
}
