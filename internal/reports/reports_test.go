package reports

import (
	"testing"

	"opsdesk/internal/models"
)

func TestBuildInventoryStatus(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "widget", Quantity: 8, ReorderPoint: 20, UnitPrice: 2.5},
		{Name: "gadget", Quantity: 0, ReorderPoint: 5, UnitPrice: 10},
		{Name: "gizmo", Quantity: 100, ReorderPoint: 10, UnitPrice: 1},
	}

	st := BuildInventoryStatus(items)

	if st.TotalItems != 108 {
		t.Fatalf("TotalItems = %d, want 108", st.TotalItems)
	}
	if want := 8*2.5 + 0*10.0 + 100*1.0; st.TotalValue != want {
		t.Fatalf("TotalValue = %v, want %v", st.TotalValue, want)
	}
	// widget is at 8 against a reorder point of 20, gadget is at zero;
	// both count as low stock.
	if st.LowStockCount != 2 {
		t.Fatalf("LowStockCount = %d, want 2", st.LowStockCount)
	}
	if st.OutOfStockCount != 1 {
		t.Fatalf("OutOfStockCount = %d, want 1", st.OutOfStockCount)
	}
	if len(st.LowStockItems) != 2 || st.LowStockItems[0].Name != "widget" {
		t.Fatalf("LowStockItems = %v", st.LowStockItems)
	}
	if len(st.OutOfStockItems) != 1 || st.OutOfStockItems[0].Name != "gadget" {
		t.Fatalf("OutOfStockItems = %v", st.OutOfStockItems)
	}
}

func TestEngagementBucket(t *testing.T) {
	tests := []struct {
		orders int
		want   string
	}{
		{orders: 8, want: "high"},
		{orders: 12, want: "high"},
		{orders: 7, want: "medium"},
		{orders: 4, want: "medium"},
		{orders: 3, want: "low"},
		{orders: 0, want: "low"},
	}

	for _, tt := range tests {
		if got := EngagementBucket(tt.orders); got != tt.want {
			t.Fatalf("EngagementBucket(%d) = %q, want %q", tt.orders, got, tt.want)
		}
	}
}

func TestBuildCustomerInsights(t *testing.T) {
	customers := []models.Customer{
		{Name: "a", Status: "active", Tier: models.TierGold, TotalOrders: 8, TotalSpent: 400},
		{Name: "b", Status: "active", Tier: models.TierGold, TotalOrders: 3, TotalSpent: 100},
		{Name: "c", Status: "inactive", Tier: models.TierBronze, TotalOrders: 5, TotalSpent: 0},
		{Name: "d", Status: "active", Tier: models.TierPlatinum, TotalOrders: 20, TotalSpent: 1500},
	}

	ins := BuildCustomerInsights(customers)

	if ins.TotalCustomers != 4 || ins.ActiveCustomers != 3 {
		t.Fatalf("totals = %d/%d, want 4/3", ins.TotalCustomers, ins.ActiveCustomers)
	}
	if ins.Engagement.High != 2 || ins.Engagement.Medium != 1 || ins.Engagement.Low != 1 {
		t.Fatalf("engagement = %+v", ins.Engagement)
	}
	if ins.AvgSpending != 500 {
		t.Fatalf("AvgSpending = %v, want 500", ins.AvgSpending)
	}
	if ins.TopCustomers[0].Name != "d" || ins.TopCustomers[1].Name != "a" {
		t.Fatalf("TopCustomers order = %v", ins.TopCustomers)
	}

	var gold TierBucket
	for _, bucket := range ins.Tiers {
		if bucket.Tier == models.TierGold {
			gold = bucket
		}
	}
	if gold.Count != 2 || gold.TotalSpent != 500 || gold.Percentage != 50 {
		t.Fatalf("gold bucket = %+v", gold)
	}
}

func TestBuildDailySales(t *testing.T) {
	sales := []models.Sale{
		{Customer: "a", Date: "2026-08-30", Total: 1379.98},
		{Customer: "b", Date: "2026-08-30", Total: 399.97},
		{Customer: "c", Date: "2026-08-29", Total: 50},
	}

	summary := BuildDailySales(sales, "2026-08-30")

	if summary.TotalRevenue != 1779.95 {
		t.Fatalf("TotalRevenue = %v, want 1779.95", summary.TotalRevenue)
	}
	if summary.TotalTransactions != 2 {
		t.Fatalf("TotalTransactions = %d, want 2", summary.TotalTransactions)
	}
	if summary.AvgTransaction != 889.975 {
		t.Fatalf("AvgTransaction = %v, want 889.975", summary.AvgTransaction)
	}
	if len(summary.Sales) != 2 {
		t.Fatalf("Sales = %v", summary.Sales)
	}
}

func TestBuildDailySalesNoMatches(t *testing.T) {
	summary := BuildDailySales([]models.Sale{{Date: "2026-01-01", Total: 99}}, "2026-01-02")
	if summary.TotalRevenue != 0 || summary.TotalTransactions != 0 || summary.AvgTransaction != 0 {
		t.Fatalf("summary = %+v, want zeros", summary)
	}
}
