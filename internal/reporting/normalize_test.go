package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int64) *int64       { return &v }

func TestNormalize_FieldAliases(t *testing.T) {
	raw := []RawPoint{
		{Date: "2024-01-02", Amount: floatPtr(50), Count: intPtr(1)},
		{Date: "2024-01-01", Revenue: floatPtr(100), Orders: intPtr(2)},
	}

	points := Normalize(raw)

	require.Len(t, points, 2)
	assert.True(t, points[0].Date.Before(points[1].Date), "output must be sorted ascending")
	assert.Equal(t, 100.0, points[0].Revenue)
	assert.Equal(t, int64(2), points[0].Orders)
	assert.Equal(t, 50.0, points[1].Revenue)
	assert.Equal(t, int64(1), points[1].Orders)
}

func TestNormalize_MergesDuplicateDates(t *testing.T) {
	raw := []RawPoint{
		{Date: "2024-03-10", Revenue: floatPtr(10), Orders: intPtr(1)},
		{Date: "2024-03-10", Revenue: floatPtr(5), Orders: intPtr(2)},
	}

	points := Normalize(raw)

	require.Len(t, points, 1)
	assert.Equal(t, 15.0, points[0].Revenue)
	assert.Equal(t, int64(3), points[0].Orders)
}

func TestNormalize_DropsMalformedPoints(t *testing.T) {
	raw := []RawPoint{
		{Date: "not-a-date", Revenue: floatPtr(10), Orders: intPtr(1)},
		{Date: "2024-03-11", Revenue: floatPtr(-5), Orders: intPtr(1)},
		{Date: "2024-03-12", Revenue: floatPtr(5), Orders: intPtr(-1)},
		{Date: "2024-03-13", Revenue: floatPtr(5), Orders: intPtr(1)},
	}

	points := Normalize(raw)

	require.Len(t, points, 1)
	assert.Equal(t, time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC), points[0].Date)
}

func TestNormalize_TimestampDatesTruncateToDay(t *testing.T) {
	raw := []RawPoint{
		{Date: "2024-06-01T09:30:00Z", Revenue: floatPtr(1), Orders: intPtr(1)},
		{Date: "2024-06-01T18:00:00Z", Revenue: floatPtr(2), Orders: intPtr(1)},
	}

	points := Normalize(raw)

	require.Len(t, points, 1)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, 3.0, points[0].Revenue)
}

func TestNormalize_MissingValueFieldsDefaultToZero(t *testing.T) {
	points := Normalize([]RawPoint{{Date: "2024-06-02"}})

	require.Len(t, points, 1)
	assert.Zero(t, points[0].Revenue)
	assert.Zero(t, points[0].Orders)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Nil(t, Normalize([]RawPoint{}))
}
