package aggregator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"api/internal/configuration"
	"api/internal/models"
	"api/internal/reporting"
	"api/internal/upstream"
)

// ErrSchoolRequired is returned when a school dashboard is loaded
// without a school scope; that is a caller bug, not an upstream failure.
var ErrSchoolRequired = errors.New("school dashboard requires a school scope")

// SchoolAggregator assembles the dashboard for one school. Every query
// is scoped to the school, with an optional festival narrowing on top.
type SchoolAggregator struct {
	Stats    upstream.IStatisticsClient
	Fallback reporting.SeriesSource

	generation atomic.Uint64
	mu         sync.RWMutex
	current    models.SchoolDashboard
}

// Load rebuilds the school view-model for the given filter. The filter
// must carry the school; see AdminAggregator.Load for the concurrency
// and stale-commit rules, which are identical here.
func (a *SchoolAggregator) Load(
	ctx context.Context,
	filter models.FilterState,
	granularity models.Granularity,
) (models.SchoolDashboard, error) {
	if filter.SchoolID == 0 {
		return models.SchoolDashboard{}, ErrSchoolRequired
	}

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
		{name: "top booths", fn: func(ctx context.Context) error {
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
	gmv, paidOrders, aov := deriveTotals(summary.GMV, summary.PaidOrders, points)

	vm := models.SchoolDashboard{
		Filter: filter,
		Summary: models.SchoolSummary{
			Festivals:  summary.Festivals,
			Booths:     summary.Booths,
			Groups:     summary.Groups,
			GMV:        gmv,
			PaidOrders: paidOrders,
			AOV:        aov,
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
		return vm, nil
	}
	a.current = vm
	return vm, nil
}

// Current returns the last committed view-model.
func (a *SchoolAggregator) Current() models.SchoolDashboard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}
