package filters

import (
	"testing"

	"api/internal/models"
	"api/internal/reporting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []models.Festival{
	{ID: 42, Name: "Spring Fair", SchoolID: 7},
	{ID: 43, Name: "Autumn Market", SchoolID: 7},
	{ID: 51, Name: "Winter Gala", SchoolID: 9},
}

func TestSetSchool_ResetsForeignFestival(t *testing.T) {
	state := NewState(catalog)

	state.SetSchool(7)
	state.SetFestival(42)
	require.Equal(t, int64(42), state.Snapshot().FestivalID)

	// Festival 42 belongs to school 7, not school 9.
	state.SetSchool(9)

	snap := state.Snapshot()
	assert.Equal(t, int64(9), snap.SchoolID)
	assert.Zero(t, snap.FestivalID, "festival must be reset in the same transition")
}

func TestSetSchool_KeepsOwnFestival(t *testing.T) {
	state := NewState(catalog)

	state.SetFestival(43)
	state.SetSchool(7)

	snap := state.Snapshot()
	assert.Equal(t, int64(7), snap.SchoolID)
	assert.Equal(t, int64(43), snap.FestivalID)
}

func TestSetSchool_ClearToAllKeepsFestival(t *testing.T) {
	state := NewState(catalog)

	state.SetSchool(7)
	state.SetFestival(42)
	state.SetSchool(0)

	snap := state.Snapshot()
	assert.Zero(t, snap.SchoolID)
	assert.Equal(t, int64(42), snap.FestivalID, "clearing the school keeps any festival valid")
}

func TestSetFestival_WithoutSchool(t *testing.T) {
	state := NewState(catalog)

	state.SetFestival(51)

	snap := state.Snapshot()
	assert.Zero(t, snap.SchoolID)
	assert.Equal(t, int64(51), snap.FestivalID)
}

func TestSetTimeRange(t *testing.T) {
	state := NewState(catalog)

	require.NoError(t, state.SetTimeRange("90d"))
	assert.Equal(t, 90, state.Snapshot().TimeRange.Days)

	err := state.SetTimeRange("2w")
	assert.Error(t, err)
	assert.Equal(t, 90, state.Snapshot().TimeRange.Days, "failed transition must not change the range")
}

func TestDefaultTimeRange(t *testing.T) {
	state := NewState(nil)
	assert.Equal(t, reporting.DefaultTimeRangeKey, state.Snapshot().TimeRange.Key)
}

func TestFestivalOptions_Derived(t *testing.T) {
	state := NewState(catalog)

	assert.Len(t, state.FestivalOptions(), 3)

	state.SetSchool(7)
	options := state.FestivalOptions()
	require.Len(t, options, 2)
	for _, f := range options {
		assert.Equal(t, int64(7), f.SchoolID)
	}

	state.SetSchool(3)
	assert.Empty(t, state.FestivalOptions())
}
