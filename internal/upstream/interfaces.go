// Package upstream holds the clients for the external statistics and
// catalog services. The dashboard aggregator only ever sees these
// interfaces, so demo fixtures and test doubles drop in freely.
package upstream

import (
	"context"

	"api/internal/models"
	"api/internal/reporting"
)

// StatsQuery carries the filter scope applied to a statistics query.
// A zero SchoolID or FestivalID omits that scope from the request.
type StatsQuery struct {
	TimeRange   models.TimeRangeSpec
	Granularity models.Granularity
	SchoolID    int64
	FestivalID  int64
}

// SummaryStats is the raw summary aggregate as returned by the
// statistics service. GMV and PaidOrders are optional: when the backend
// omits them the aggregator derives both from the revenue series.
type SummaryStats struct {
	Schools          int64    `json:"schools"`
	OngoingFestivals int64    `json:"ongoing_festivals"`
	ActiveBooths     int64    `json:"active_booths"`
	ActiveUsers      int64    `json:"active_users"`
	WalletTopUp      float64  `json:"wallet_topup"`
	Commission       float64  `json:"commission"`
	Festivals        int64    `json:"festivals"`
	Booths           int64    `json:"booths"`
	Groups           int64    `json:"groups"`
	GMV              *float64 `json:"gmv"`
	PaidOrders       *int64   `json:"paid_orders"`
}

type IStatisticsClient interface {
	GetSummary(ctx context.Context, query StatsQuery) (SummaryStats, error)
	GetRevenueSeries(ctx context.Context, query StatsQuery) ([]reporting.RawPoint, error)
	GetPaymentMix(ctx context.Context, query StatsQuery) ([]models.PaymentMixEntry, error)
	GetTopEntities(ctx context.Context, query StatsQuery, limit int) ([]models.TopEntity, error)
	GetRecentOrders(ctx context.Context, query StatsQuery, limit int) ([]models.RecentOrder, error)
	GetAlerts(ctx context.Context, query StatsQuery) ([]models.Alert, error)
}

type ICatalogClient interface {
	GetSchools(ctx context.Context) ([]models.School, error)
	GetFestivals(ctx context.Context) ([]models.Festival, error)
}
