package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchools(t *testing.T) {
	t.Run("should list schools", func(t *testing.T) {
		router := CatalogService{Catalog: testCatalog()}.Routes()
		rec := doRequest(t, router, "/schools")
		require.Equal(t, http.StatusOK, rec.Code)

		var schools []models.School
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schools))
		assert.Len(t, schools, 2)
	})

	t.Run("should report an unreachable catalog", func(t *testing.T) {
		router := CatalogService{Catalog: stubCatalog{err: errors.New("catalog down")}}.Routes()
		rec := doRequest(t, router, "/schools")
		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, []string{"CATALOG_UNAVAILABLE"}, decodeErrors(t, rec))
	})
}

func TestGetFestivals(t *testing.T) {
	router := CatalogService{Catalog: testCatalog()}.Routes()

	t.Run("should list all festivals without a school filter", func(t *testing.T) {
		rec := doRequest(t, router, "/festivals")
		require.Equal(t, http.StatusOK, rec.Code)

		var festivals []models.Festival
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &festivals))
		assert.Len(t, festivals, 3)
	})

	t.Run("should narrow festivals to the requested school", func(t *testing.T) {
		rec := doRequest(t, router, "/festivals?school_id=7")
		require.Equal(t, http.StatusOK, rec.Code)

		var festivals []models.Festival
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &festivals))
		require.Len(t, festivals, 2)
		for _, festival := range festivals {
			assert.Equal(t, int64(7), festival.SchoolID)
		}
	})

	t.Run("should reject a malformed school_id", func(t *testing.T) {
		rec := doRequest(t, router, "/festivals?school_id=abc")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"INVALID_SCHOOL_ID"}, decodeErrors(t, rec))
	})
}

func TestGetTimeRanges(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/timeranges", nil)
	GetTimeRanges(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var ranges []models.TimeRangeSpec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranges))
	require.Len(t, ranges, 5)
	assert.Equal(t, "7d", ranges[0].Key)
	assert.Equal(t, 7, ranges[0].Days)
}
