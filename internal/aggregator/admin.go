package aggregator

import (
	"context"
	"sync"
	"sync/atomic"

	"api/internal/configuration"
	"api/internal/models"
	"api/internal/reporting"
	"api/internal/upstream"
)

// AdminAggregator assembles the platform-wide dashboard. When no school
// is selected the queries run unscoped (global view).
type AdminAggregator struct {
	Stats    upstream.IStatisticsClient
	Fallback reporting.SeriesSource

	generation atomic.Uint64
	mu         sync.RWMutex
	current    models.AdminDashboard
}

// Load rebuilds the admin view-model for the given filter. All six
// aggregate queries run concurrently; the call returns once every one
// has settled. A load superseded by a newer one still returns its own
// result but does not commit it, so stale responses never overwrite
// newer state.
func (a *AdminAggregator) Load(
	ctx context.Context,
	filter models.FilterState,
	granularity models.Granularity,
) models.AdminDashboard {
	generation := a.generation.Add(1)

	query := upstream.StatsQuery{
		TimeRange:   filter.TimeRange,
		Granularity: granularity,
		SchoolID:    filter.SchoolID,
		FestivalID:  filter.FestivalID,
	}

	var (
		summary   upstream.SummaryStats
		rawSeries []reporting.RawPoint
		mix       []models.PaymentMixEntry
		top       []models.TopEntity
		orders    []models.RecentOrder
		alerts    []models.Alert
	)

	warnings := runTasks(ctx, []fetchTask{
		{name: "summary", fn: func(ctx context.Context) error {
			var err error
			summary, err = a.Stats.GetSummary(ctx, query)
			return err
		}},
		{name: "revenue series", fn: func(ctx context.Context) error {
			var err error
			rawSeries, err = a.Stats.GetRevenueSeries(ctx, query)
			return err
		}},
		{name: "payment mix", fn: func(ctx context.Context) error {
			var err error
			mix, err = a.Stats.GetPaymentMix(ctx, query)
			return err
		}},
		{name: "top festivals", fn: func(ctx context.Context) error {
			var err error
			top, err = a.Stats.GetTopEntities(ctx, query, configuration.TopEntitiesLimit)
			return err
		}},
		{name: "recent orders", fn: func(ctx context.Context) error {
			var err error
			orders, err = a.Stats.GetRecentOrders(ctx, query, configuration.RecentOrdersLimit)
			return err
		}},
		{name: "alerts", fn: func(ctx context.Context) error {
			var err error
			alerts, err = a.Stats.GetAlerts(ctx, query)
			return err
		}},
	})

	buckets, points := resolveSeries(rawSeries, a.Fallback, filter.TimeRange.Days, granularity)
	gmv, paidOrders, _ := deriveTotals(summary.GMV, summary.PaidOrders, points)

	vm := models.AdminDashboard{
		Filter: filter,
		Summary: models.AdminSummary{
			Schools:          summary.Schools,
			OngoingFestivals: summary.OngoingFestivals,
			GMV:              gmv,
			PaidOrders:       paidOrders,
			ActiveBooths:     summary.ActiveBooths,
			ActiveUsers:      summary.ActiveUsers,
			WalletTopUp:      summary.WalletTopUp,
			Commission:       summary.Commission,
		},
		Revenue:      buckets,
		PaymentMix:   mix,
		TopEntities:  top,
		RecentOrders: orders,
		Alerts:       alerts,
		Warnings:     warnings,
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if generation != a.generation.Load() {
		// A newer load started while this one was in flight.
		return vm
	}
	a.current = vm
	return vm
}

// Current returns the last committed view-model.
func (a *AdminAggregator) Current() models.AdminDashboard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}
