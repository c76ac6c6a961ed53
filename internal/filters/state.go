// Package filters holds the dashboard filter state machine. Transitions
// are pure and framework-free so the cascade rules unit-test without any
// HTTP plumbing.
package filters

import (
	"api/internal/models"
	"api/internal/reporting"
)

// State holds the selected time range, school and festival. A festival
// selection is only valid while it belongs to the selected school; the
// school transition enforces that atomically.
type State struct {
	timeRange  models.TimeRangeSpec
	schoolID   int64
	festivalID int64
	festivals  []models.Festival
}

// NewState builds a filter state over the festival catalog with the
// default time range and nothing selected.
func NewState(festivals []models.Festival) *State {
	spec, _ := reporting.TimeRangeByKey(reporting.DefaultTimeRangeKey)
	return &State{
		timeRange: spec,
		festivals: festivals,
	}
}

// SetTimeRange selects a range by catalog key. Unknown keys are a usage
// error and leave the state untouched.
func (s *State) SetTimeRange(key string) error {
	spec, err := reporting.TimeRangeByKey(key)
	if err != nil {
		return err
	}
	s.timeRange = spec
	return nil
}

// SetSchool selects a school (0 clears the selection). When the current
// festival does not belong to the new school the festival selection is
// reset in the same transition, so callers never observe an inconsistent
// pair.
func (s *State) SetSchool(id int64) {
	s.schoolID = id
	if s.festivalID != 0 && id != 0 && s.festivalOwner(s.festivalID) != id {
		s.festivalID = 0
	}
}

// SetFestival selects a festival directly. The school selection is left
// alone; choosing a festival without a school keeps the school filter at
// "all".
func (s *State) SetFestival(id int64) {
	s.festivalID = id
}

// FestivalOptions returns the festivals valid under the current school
// selection. The list is derived on every call, never stored.
func (s *State) FestivalOptions() []models.Festival {
	if s.schoolID == 0 {
		out := make([]models.Festival, len(s.festivals))
		copy(out, s.festivals)
		return out
	}

	var out []models.Festival
	for _, f := range s.festivals {
		if f.SchoolID == s.schoolID {
			out = append(out, f)
		}
	}
	return out
}

// Snapshot returns the committed filter values for one load cycle.
func (s *State) Snapshot() models.FilterState {
	return models.FilterState{
		TimeRange:  s.timeRange,
		SchoolID:   s.schoolID,
		FestivalID: s.festivalID,
	}
}

func (s *State) festivalOwner(festivalID int64) int64 {
	for _, f := range s.festivals {
		if f.ID == festivalID {
			return f.SchoolID
		}
	}
	return 0
}
