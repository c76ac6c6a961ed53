// Package aggregator builds dashboard view-models by fanning out the
// aggregate queries for one filter state, merging whatever succeeded and
// recomputing the derived totals. Each dashboard owns one aggregator
// instance; view-models are rebuilt in full on every filter change.
package aggregator

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"api/internal/models"
	"api/internal/reporting"

	"go.uber.org/zap"
)

// fetchTask is one independent aggregate query within a load cycle.
type fetchTask struct {
	name string
	fn   func(ctx context.Context) error
}

// runTasks launches every task concurrently and waits for all of them to
// settle. A failed task leaves its slot empty and contributes one warning
// entry; it never stops the other tasks. Warnings are sorted so the
// consolidated notification is stable across runs.
func runTasks(ctx context.Context, tasks []fetchTask) []string {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var warnings []string

	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(task fetchTask) {
			defer wg.Done()
			if err := task.fn(ctx); err != nil {
				zap.L().Warn("Dashboard aggregate failed",
					zap.String("aggregate", task.name),
					zap.Error(err))
				mu.Lock()
				warnings = append(warnings, fmt.Sprintf("%s unavailable", task.name))
				mu.Unlock()
			}
		}(task)
	}
	wg.Wait()

	sort.Strings(warnings)
	return warnings
}

// resolveSeries normalizes the raw backend series, substitutes the
// fallback source sized to the selected range when the result is empty,
// and groups it at the requested granularity. A non-empty backend series
// always wins; the fallback is never mixed in partially.
func resolveSeries(
	raw []reporting.RawPoint,
	fallback reporting.SeriesSource,
	days int,
	granularity models.Granularity,
) ([]models.GroupedBucket, []models.RevenuePoint) {
	points := reporting.Normalize(raw)
	if len(points) == 0 && fallback != nil {
		points = fallback.Trailing(days)
	}
	return reporting.Group(points, granularity), points
}

// deriveTotals computes GMV, paid-order count and AOV. Summary-provided
// values win; otherwise both are summed from the (possibly synthesized)
// series. The AOV denominator is floored at one order, so a zero-order
// period yields AOV == GMV instead of a division by zero.
func deriveTotals(gmv *float64, paidOrders *int64, points []models.RevenuePoint) (float64, int64, float64) {
	var totalGMV float64
	if gmv != nil {
		totalGMV = *gmv
	} else {
		for _, p := range points {
			totalGMV += p.Revenue
		}
	}

	var totalOrders int64
	if paidOrders != nil {
		totalOrders = *paidOrders
	} else {
		for _, p := range points {
			totalOrders += p.Orders
		}
	}

	denominator := totalOrders
	if denominator < 1 {
		denominator = 1
	}

	return totalGMV, totalOrders, totalGMV / float64(denominator)
}
