package upstream

import (
	"context"
	"fmt"
	"time"

	"api/internal/models"
	"api/internal/reporting"
)

// DemoStatisticsClient serves deterministic fixtures so dashboards render
// during development without a reachable statistics backend. It returns
// an empty revenue series on purpose: the aggregator's fallback
// synthesizer takes over, which keeps that path exercised end to end.
type DemoStatisticsClient struct{}

func (DemoStatisticsClient) GetSummary(_ context.Context, _ StatsQuery) (SummaryStats, error) {
	return SummaryStats{
		Schools:          3,
		OngoingFestivals: 2,
		ActiveBooths:     24,
		ActiveUsers:      410,
		WalletTopUp:      125000,
		Commission:       8200,
		Festivals:        4,
		Booths:           12,
		Groups:           9,
	}, nil
}

func (DemoStatisticsClient) GetRevenueSeries(_ context.Context, _ StatsQuery) ([]reporting.RawPoint, error) {
	return nil, nil
}

func (DemoStatisticsClient) GetPaymentMix(_ context.Context, _ StatsQuery) ([]models.PaymentMixEntry, error) {
	return []models.PaymentMixEntry{
		{Method: "wallet", Count: 96},
		{Method: "cash", Count: 41},
		{Method: "card", Count: 17},
	}, nil
}

func (DemoStatisticsClient) GetTopEntities(_ context.Context, _ StatsQuery, limit int) ([]models.TopEntity, error) {
	entities := []models.TopEntity{
		{Name: "Spring Fair", Revenue: 48200, Orders: 310},
		{Name: "Autumn Market", Revenue: 31500, Orders: 204},
		{Name: "Winter Gala", Revenue: 18900, Orders: 117},
		{Name: "Science Expo", Revenue: 9400, Orders: 58},
		{Name: "Book Bazaar", Revenue: 4100, Orders: 33},
	}
	if limit < len(entities) {
		entities = entities[:limit]
	}
	return entities, nil
}

func (DemoStatisticsClient) GetRecentOrders(_ context.Context, _ StatsQuery, limit int) ([]models.RecentOrder, error) {
	now := time.Now().UTC()
	orders := make([]models.RecentOrder, 0, limit)
	for i := 0; i < limit; i++ {
		orders = append(orders, models.RecentOrder{
			OrderID:   fmt.Sprintf("ORD-%04d", 1200-i),
			BoothName: fmt.Sprintf("Booth %d", i%6+1),
			Amount:    float64(150 + i*35),
			Status:    "paid",
			CreatedAt: now.Add(-time.Duration(i) * 7 * time.Minute),
		})
	}
	return orders, nil
}

func (DemoStatisticsClient) GetAlerts(_ context.Context, _ StatsQuery) ([]models.Alert, error) {
	return []models.Alert{
		{Type: "low_stock", Message: "3 booths are low on menu stock", Count: 3},
		{Type: "pending_approval", Message: "1 festival awaits approval", Count: 1},
	}, nil
}

// DemoCatalogClient mirrors the statistics fixtures with a matching
// school/festival catalog.
type DemoCatalogClient struct{}

func (DemoCatalogClient) GetSchools(_ context.Context) ([]models.School, error) {
	return []models.School{
		{ID: 1, Name: "Northside High"},
		{ID: 2, Name: "Riverdale Academy"},
		{ID: 3, Name: "Hillcrest School"},
	}, nil
}

func (DemoCatalogClient) GetFestivals(_ context.Context) ([]models.Festival, error) {
	return []models.Festival{
		{ID: 10, Name: "Spring Fair", SchoolID: 1},
		{ID: 11, Name: "Autumn Market", SchoolID: 1},
		{ID: 20, Name: "Winter Gala", SchoolID: 2},
		{ID: 30, Name: "Science Expo", SchoolID: 3},
	}, nil
}
