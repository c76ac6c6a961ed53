package models

import (
	"fmt"
	"time"
)

// TimeRangeSpec maps a range key to a lookback window and display label.
// The catalog is fixed at process start and never mutated.
type TimeRangeSpec struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// RevenuePoint is one calendar day of transacted revenue.
// Dates within a series are strictly increasing and unique.
type RevenuePoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Orders  int64     `json:"orders"`
}

// GroupedBucket aggregates a contiguous run of revenue points sharing
// the same day/month/year key.
type GroupedBucket struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// Granularity is the bucketing unit applied to a revenue series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity resolves a query value to a Granularity.
// Empty input defaults to day; anything else unknown is rejected.
func ParseGranularity(value string) (Granularity, error) {
	switch value {
	case "", string(GranularityDay):
		return GranularityDay, nil
	case string(GranularityMonth):
		return GranularityMonth, nil
	case string(GranularityYear):
		return GranularityYear, nil
	default:
		return "", fmt.Errorf("unknown granularity %q", value)
	}
}

// FilterState is a committed snapshot of the dashboard filters.
// A zero SchoolID or FestivalID means "none selected".
type FilterState struct {
	TimeRange  TimeRangeSpec `json:"time_range"`
	SchoolID   int64         `json:"school_id,omitempty"`
	FestivalID int64         `json:"festival_id,omitempty"`
}
