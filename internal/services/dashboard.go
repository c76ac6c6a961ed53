package services

import (
	"net/http"
	"strconv"

	"api/internal/aggregator"
	apierrors "api/internal/errors"
	"api/internal/filters"
	h "api/internal/helpers"
	"api/internal/models"
	"api/internal/upstream"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DashboardService struct {
	Catalog upstream.ICatalogClient
	Admin   *aggregator.AdminAggregator
	School  *aggregator.SchoolAggregator
}

func (s DashboardService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/admin", s.GetAdminDashboard)
	r.Get("/school/{schoolID}", s.GetSchoolDashboard)

	return r
}

func (s DashboardService) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	granularity, ok := parseGranularity(w, r)
	if !ok {
		return
	}

	state, ok := s.buildFilterState(w, r)
	if !ok {
		return
	}

	if raw := r.URL.Query().Get("school_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.RespondWithError(w, 400, []string{apierrors.ErrInvalidSchoolID})
			return
		}
		state.SetSchool(id)
	}

	vm := s.Admin.Load(r.Context(), state.Snapshot(), granularity)
	h.RespondWithJSON(w, 200, vm)
}

func (s DashboardService) GetSchoolDashboard(w http.ResponseWriter, r *http.Request) {
	schoolID, err := strconv.ParseInt(chi.URLParam(r, "schoolID"), 10, 64)
	if err != nil || schoolID <= 0 {
		h.RespondWithError(w, 400, []string{apierrors.ErrInvalidSchoolID})
		return
	}

	granularity, ok := parseGranularity(w, r)
	if !ok {
		return
	}

	state, ok := s.buildFilterState(w, r)
	if !ok {
		return
	}
	state.SetSchool(schoolID)

	vm, err := s.School.Load(r.Context(), state.Snapshot(), granularity)
	if err != nil {
		h.RespondWithError(w, 400, []string{apierrors.ErrInvalidSchoolID})
		return
	}
	h.RespondWithJSON(w, 200, vm)
}

// buildFilterState reconstructs the filter state machine from query
// params. The festival is applied before the school so that the school
// transition clears any festival that does not belong to it, exactly as
// a live selector cascade would.
func (s DashboardService) buildFilterState(w http.ResponseWriter, r *http.Request) (*filters.State, bool) {
	festivals, err := s.Catalog.GetFestivals(r.Context())
	if err != nil {
		// The dashboard still renders; only cascade validation degrades.
		zap.L().Warn("Failed to load festival catalog for filter cascade", zap.Error(err))
	}

	state := filters.NewState(festivals)

	if key := r.URL.Query().Get("time_range"); key != "" {
		if err := state.SetTimeRange(key); err != nil {
			h.RespondWithError(w, 400, []string{apierrors.ErrUnknownTimeRange})
			return nil, false
		}
	}

	if raw := r.URL.Query().Get("festival_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.RespondWithError(w, 400, []string{apierrors.ErrInvalidFestivalID})
			return nil, false
		}
		state.SetFestival(id)
	}

	return state, true
}

func parseGranularity(w http.ResponseWriter, r *http.Request) (models.Granularity, bool) {
	granularity, err := models.ParseGranularity(r.URL.Query().Get("granularity"))
	if err != nil {
		h.RespondWithError(w, 400, []string{apierrors.ErrUnknownGranularity})
		return "", false
	}
	return granularity, true
}
