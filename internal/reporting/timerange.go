package reporting

import (
	"fmt"

	"api/internal/models"
)

// DefaultTimeRangeKey is the range selected when a dashboard first loads.
const DefaultTimeRangeKey = "30d"

// timeRanges is the fixed range catalog. Defined once, looked up by key,
// never mutated.
var timeRanges = []models.TimeRangeSpec{
	{Key: "7d", Label: "Last 7 days", Days: 7},
	{Key: "30d", Label: "Last 30 days", Days: 30},
	{Key: "90d", Label: "Last 90 days", Days: 90},
	{Key: "180d", Label: "Last 6 months", Days: 180},
	{Key: "365d", Label: "Last 12 months", Days: 365},
}

// TimeRanges returns a copy of the range catalog in display order.
func TimeRanges() []models.TimeRangeSpec {
	out := make([]models.TimeRangeSpec, len(timeRanges))
	copy(out, timeRanges)
	return out
}

// TimeRangeByKey resolves a range key. Unknown keys are a usage error,
// never silently defaulted.
func TimeRangeByKey(key string) (models.TimeRangeSpec, error) {
	for _, spec := range timeRanges {
		if spec.Key == key {
			return spec, nil
		}
	}
	return models.TimeRangeSpec{}, fmt.Errorf("unknown time range %q", key)
}
