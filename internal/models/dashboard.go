package models

import "time"

// AdminSummary contains the platform-wide headline metrics.
type AdminSummary struct {
	Schools          int64   `json:"schools"`
	OngoingFestivals int64   `json:"ongoing_festivals"`
	GMV              float64 `json:"gmv"`
	PaidOrders       int64   `json:"paid_orders"`
	ActiveBooths     int64   `json:"active_booths"`
	ActiveUsers      int64   `json:"active_users"`
	WalletTopUp      float64 `json:"wallet_topup"`
	Commission       float64 `json:"commission"`
}

// SchoolSummary contains the headline metrics scoped to one school.
type SchoolSummary struct {
	Festivals  int64   `json:"festivals"`
	Booths     int64   `json:"booths"`
	Groups     int64   `json:"groups"`
	GMV        float64 `json:"gmv"`
	PaidOrders int64   `json:"paid_orders"`
	AOV        float64 `json:"aov"`
}

// PaymentMixEntry is one payment method's share of orders.
type PaymentMixEntry struct {
	Method string `json:"method"`
	Count  int64  `json:"count"`
}

// TopEntity is a ranked festival (admin view) or booth (school view).
type TopEntity struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// RecentOrder is one row of the recent activity table.
type RecentOrder struct {
	OrderID   string    `json:"order_id"`
	BoothName string    `json:"booth_name"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Alert is one operational alert row surfaced on a dashboard.
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Count   int64  `json:"count,omitempty"`
}

// AdminDashboard is the full view-model behind the admin dashboard.
// It is rebuilt in full on every filter change, never patched in place.
// Warnings lists the aggregates that failed to load; the rest of the
// view-model stays renderable regardless.
type AdminDashboard struct {
	Filter       FilterState       `json:"filter"`
	Summary      AdminSummary      `json:"summary"`
	Revenue      []GroupedBucket   `json:"revenue"`
	PaymentMix   []PaymentMixEntry `json:"payment_mix"`
	TopEntities  []TopEntity       `json:"top_festivals"`
	RecentOrders []RecentOrder     `json:"recent_orders"`
	Alerts       []Alert           `json:"alerts"`
	Warnings     []string          `json:"warnings"`
}

// SchoolDashboard is the full view-model behind the school dashboard.
type SchoolDashboard struct {
	Filter       FilterState       `json:"filter"`
	Summary      SchoolSummary     `json:"summary"`
	Revenue      []GroupedBucket   `json:"revenue"`
	PaymentMix   []PaymentMixEntry `json:"payment_mix"`
	TopEntities  []TopEntity       `json:"top_booths"`
	RecentOrders []RecentOrder     `json:"recent_orders"`
	Alerts       []Alert           `json:"alerts"`
	Warnings     []string          `json:"warnings"`
}
