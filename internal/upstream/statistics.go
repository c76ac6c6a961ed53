package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"api/internal/models"
	"api/internal/reporting"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// StatisticsClient talks to the statistics query service over REST.
// Every response uses the canonical envelope {"data": ...}; older
// double-wrapped envelopes are not supported.
type StatisticsClient struct {
	client *resty.Client
}

func NewStatisticsClient(config models.StatisticsConfiguration) *StatisticsClient {
	return &StatisticsClient{client: newRESTClient(config.BaseURL, config.TimeoutSeconds, config.RetryCount)}
}

func newRESTClient(baseURL string, timeoutSeconds, retryCount int) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Duration(timeoutSeconds) * time.Second).
		SetRetryCount(retryCount).
		SetHeader("Accept", "application/json").
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return client
}

func (q StatsQuery) params() map[string]string {
	params := map[string]string{
		"time_range": q.TimeRange.Key,
	}
	if q.Granularity != "" {
		params["granularity"] = string(q.Granularity)
	}
	if q.SchoolID != 0 {
		params["school_id"] = strconv.FormatInt(q.SchoolID, 10)
	}
	if q.FestivalID != 0 {
		params["festival_id"] = strconv.FormatInt(q.FestivalID, 10)
	}
	return params
}

func getData[T any](ctx context.Context, client *resty.Client, path string, params map[string]string) (T, error) {
	var envelope struct {
		Data T `json:"data"`
	}

	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&envelope).
		Get(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("request to %s failed: %w", path, err)
	}
	if resp.IsError() {
		var zero T
		return zero, fmt.Errorf("request to %s returned %s", path, resp.Status())
	}

	return envelope.Data, nil
}

func (c *StatisticsClient) GetSummary(ctx context.Context, query StatsQuery) (SummaryStats, error) {
	return getData[SummaryStats](ctx, c.client, "/v1/stats/summary", query.params())
}

func (c *StatisticsClient) GetRevenueSeries(ctx context.Context, query StatsQuery) ([]reporting.RawPoint, error) {
	series, err := getData[struct {
		Series []reporting.RawPoint `json:"series"`
	}](ctx, c.client, "/v1/stats/revenue-series", query.params())
	if err != nil {
		return nil, err
	}
	return series.Series, nil
}

func (c *StatisticsClient) GetPaymentMix(ctx context.Context, query StatsQuery) ([]models.PaymentMixEntry, error) {
	return getData[[]models.PaymentMixEntry](ctx, c.client, "/v1/stats/payment-mix", query.params())
}

func (c *StatisticsClient) GetTopEntities(ctx context.Context, query StatsQuery, limit int) ([]models.TopEntity, error) {
	params := query.params()
	params["limit"] = strconv.Itoa(limit)
	return getData[[]models.TopEntity](ctx, c.client, "/v1/stats/top-entities", params)
}

func (c *StatisticsClient) GetRecentOrders(ctx context.Context, query StatsQuery, limit int) ([]models.RecentOrder, error) {
	params := query.params()
	params["limit"] = strconv.Itoa(limit)
	delete(params, "granularity")
	return getData[[]models.RecentOrder](ctx, c.client, "/v1/stats/recent-orders", params)
}

func (c *StatisticsClient) GetAlerts(ctx context.Context, query StatsQuery) ([]models.Alert, error) {
	params := query.params()
	delete(params, "granularity")
	delete(params, "time_range")
	return getData[[]models.Alert](ctx, c.client, "/v1/stats/alerts", params)
}
