package reporting

import (
	"sort"
	"time"

	"api/internal/models"
)

// RawPoint is one revenue series point as delivered by the statistics
// backend. Older deployments emit amount/count instead of revenue/orders,
// so both field pairs are accepted.
type RawPoint struct {
	Date    string   `json:"date"`
	Revenue *float64 `json:"revenue,omitempty"`
	Amount  *float64 `json:"amount,omitempty"`
	Orders  *int64   `json:"orders,omitempty"`
	Count   *int64   `json:"count,omitempty"`
}

// Normalize converts a raw backend series into the canonical point list:
// one point per calendar day, strictly increasing unique dates,
// non-negative values. Malformed points are dropped, duplicate dates are
// merged by summation.
func Normalize(raw []RawPoint) []models.RevenuePoint {
	byDate := make(map[time.Time]models.RevenuePoint, len(raw))

	for _, rp := range raw {
		date, ok := parseDate(rp.Date)
		if !ok {
			continue
		}

		revenue := firstFloat(rp.Revenue, rp.Amount)
		orders := firstInt(rp.Orders, rp.Count)
		if revenue < 0 || orders < 0 {
			continue
		}

		point := byDate[date]
		point.Date = date
		point.Revenue += revenue
		point.Orders += orders
		byDate[date] = point
	}

	if len(byDate) == 0 {
		return nil
	}

	points := make([]models.RevenuePoint, 0, len(byDate))
	for _, point := range byDate {
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	return points
}

// parseDate accepts plain calendar dates and RFC 3339 timestamps,
// truncating the latter to the day.
func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func firstFloat(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstInt(values ...*int64) int64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}
