package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/internal/models"
	"api/internal/reporting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuery() StatsQuery {
	spec, _ := reporting.TimeRangeByKey("30d")
	return StatsQuery{
		TimeRange:   spec,
		Granularity: models.GranularityDay,
		SchoolID:    7,
	}
}

func newTestStatisticsClient(serverURL string) *StatisticsClient {
	return NewStatisticsClient(models.StatisticsConfiguration{
		Type:           "rest",
		BaseURL:        serverURL,
		TimeoutSeconds: 2,
		RetryCount:     0,
	})
}

func TestGetSummary(t *testing.T) {
	t.Run("should decode the data envelope and forward filter params", func(t *testing.T) {
		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/stats/summary", r.URL.Path)
			gotQuery = r.URL.Query()
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"schools":3,"gmv":1234.5,"paid_orders":17}}`))
		}))
		defer server.Close()

		stats, err := newTestStatisticsClient(server.URL).GetSummary(context.Background(), testQuery())
		require.NoError(t, err)

		assert.Equal(t, int64(3), stats.Schools)
		require.NotNil(t, stats.GMV)
		assert.InDelta(t, 1234.5, *stats.GMV, 0.001)
		require.NotNil(t, stats.PaidOrders)
		assert.Equal(t, int64(17), *stats.PaidOrders)

		assert.Equal(t, []string{"30d"}, gotQuery["time_range"])
		assert.Equal(t, []string{"day"}, gotQuery["granularity"])
		assert.Equal(t, []string{"7"}, gotQuery["school_id"])
		assert.NotContains(t, gotQuery, "festival_id")
	})

	t.Run("should surface upstream error statuses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestStatisticsClient(server.URL).GetSummary(context.Background(), testQuery())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/v1/stats/summary")
	})
}

func TestGetRevenueSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/stats/revenue-series", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"series":[
			{"date":"2024-05-01","revenue":100,"orders":2},
			{"date":"2024-05-02","amount":50,"count":1}
		]}}`))
	}))
	defer server.Close()

	series, err := newTestStatisticsClient(server.URL).GetRevenueSeries(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, series, 2)

	// Field aliases stay raw here; the normalizer resolves them.
	assert.Equal(t, "2024-05-01", series[0].Date)
	require.NotNil(t, series[0].Revenue)
	assert.InDelta(t, 100, *series[0].Revenue, 0.001)
	require.NotNil(t, series[1].Amount)
	assert.InDelta(t, 50, *series[1].Amount, 0.001)
}

func TestGetAlerts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.NotContains(t, query, "time_range")
		assert.NotContains(t, query, "granularity")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"type":"low_stock","message":"low stock"}]}`))
	}))
	defer server.Close()

	alerts, err := newTestStatisticsClient(server.URL).GetAlerts(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "low_stock", alerts[0].Type)
}

func TestGetTopEntities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"name":"Spring Fair","revenue":900,"orders":12}]}`))
	}))
	defer server.Close()

	entities, err := newTestStatisticsClient(server.URL).GetTopEntities(context.Background(), testQuery(), 5)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Spring Fair", entities[0].Name)
}
