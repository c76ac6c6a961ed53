package services

import (
	"net/http"
	"strconv"

	apierrors "api/internal/errors"
	"api/internal/filters"
	h "api/internal/helpers"
	"api/internal/reporting"
	"api/internal/upstream"

	"github.com/go-chi/chi/v5"
)

type CatalogService struct {
	Catalog upstream.ICatalogClient
}

func (s CatalogService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/schools", s.GetSchools)
	r.Get("/festivals", s.GetFestivals)

	return r
}

func (s CatalogService) GetSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := s.Catalog.GetSchools(r.Context())
	if err != nil {
		h.RespondWithError(w, 502, []string{apierrors.ErrCatalogUnavailable})
		return
	}
	h.RespondWithJSON(w, 200, schools)
}

// GetFestivals returns the festival list, narrowed to one school when
// school_id is given. The narrowing reuses the filter state machine's
// derived options rather than re-implementing the rule here.
func (s CatalogService) GetFestivals(w http.ResponseWriter, r *http.Request) {
	festivals, err := s.Catalog.GetFestivals(r.Context())
	if err != nil {
		h.RespondWithError(w, 502, []string{apierrors.ErrCatalogUnavailable})
		return
	}

	state := filters.NewState(festivals)
	if raw := r.URL.Query().Get("school_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.RespondWithError(w, 400, []string{apierrors.ErrInvalidSchoolID})
			return
		}
		state.SetSchool(id)
	}

	h.RespondWithJSON(w, 200, state.FestivalOptions())
}

// GetTimeRanges serves the fixed time-range catalog for range selectors.
func GetTimeRanges(w http.ResponseWriter, _ *http.Request) {
	h.RespondWithJSON(w, 200, reporting.TimeRanges())
}
