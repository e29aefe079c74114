// Package reports computes derived summary views from repository snapshots.
// Everything here is a pure function over slices; nothing is persisted and
// results are recomputed on every request.
package reports

import (
	"sort"

	"opsdesk/internal/models"
)

// Engagement bucket thresholds, in total orders placed.
const (
	highEngagementMin   = 8
	mediumEngagementMin = 4
)

// InventoryStatus summarizes stock levels and valuation.
type InventoryStatus struct {
	TotalItems      int                    `json:"totalItems"`
	TotalValue      float64                `json:"totalValue"`
	LowStockCount   int                    `json:"lowStockCount"`
	OutOfStockCount int                    `json:"outOfStockCount"`
	LowStockItems   []models.InventoryItem `json:"lowStockItems"`
	OutOfStockItems []models.InventoryItem `json:"outOfStockItems"`
}

// BuildInventoryStatus computes valuation and reorder classification over
// the current inventory snapshot. An item is low stock when its quantity is
// at or below its reorder point, out of stock at exactly zero.
func BuildInventoryStatus(items []models.InventoryItem) InventoryStatus {
	st := InventoryStatus{
		LowStockItems:   []models.InventoryItem{},
		OutOfStockItems: []models.InventoryItem{},
	}
	for _, item := range items {
		st.TotalItems += item.Quantity
		st.TotalValue += float64(item.Quantity) * item.UnitPrice
		if item.Quantity <= item.ReorderPoint {
			st.LowStockCount++
			st.LowStockItems = append(st.LowStockItems, item)
		}
		if item.Quantity == 0 {
			st.OutOfStockCount++
			st.OutOfStockItems = append(st.OutOfStockItems, item)
		}
	}
	return st
}

// TierBucket is one loyalty tier's share of the customer base.
type TierBucket struct {
	Tier       string  `json:"tier"`
	Count      int     `json:"count"`
	TotalSpent float64 `json:"totalSpent"`
	Percentage float64 `json:"percentage"`
}

// Engagement counts customers by ordering frequency.
type Engagement struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// CustomerInsights summarizes the customer base.
type CustomerInsights struct {
	TotalCustomers  int               `json:"totalCustomers"`
	ActiveCustomers int               `json:"activeCustomers"`
	AvgSpending     float64           `json:"avgSpending"`
	TopCustomers    []models.Customer `json:"topCustomers"`
	Tiers           []TierBucket      `json:"tierDistribution"`
	Engagement      Engagement        `json:"engagement"`
}

// EngagementBucket classifies a customer by total orders: high at 8 or
// more, medium from 4 up to but not including 8, low below 4.
func EngagementBucket(totalOrders int) string {
	switch {
	case totalOrders >= highEngagementMin:
		return "high"
	case totalOrders >= mediumEngagementMin:
		return "medium"
	default:
		return "low"
	}
}

// BuildCustomerInsights computes tier distribution, engagement buckets, and
// top spenders over the current customer snapshot.
func BuildCustomerInsights(customers []models.Customer) CustomerInsights {
	ins := CustomerInsights{TotalCustomers: len(customers), TopCustomers: []models.Customer{}}

	var totalSpent float64
	perTier := map[string]*TierBucket{}
	for _, tier := range []string{models.TierBronze, models.TierSilver, models.TierGold, models.TierPlatinum} {
		bucket := &TierBucket{Tier: tier}
		perTier[tier] = bucket
	}

	for _, c := range customers {
		if c.Status == "active" {
			ins.ActiveCustomers++
		}
		totalSpent += c.TotalSpent
		if bucket, ok := perTier[c.Tier]; ok {
			bucket.Count++
			bucket.TotalSpent += c.TotalSpent
		}
		switch EngagementBucket(c.TotalOrders) {
		case "high":
			ins.Engagement.High++
		case "medium":
			ins.Engagement.Medium++
		default:
			ins.Engagement.Low++
		}
	}

	if len(customers) > 0 {
		ins.AvgSpending = totalSpent / float64(len(customers))
	}

	for _, tier := range []string{models.TierBronze, models.TierSilver, models.TierGold, models.TierPlatinum} {
		bucket := *perTier[tier]
		if len(customers) > 0 {
			bucket.Percentage = float64(bucket.Count) / float64(len(customers)) * 100
		}
		ins.Tiers = append(ins.Tiers, bucket)
	}

	top := make([]models.Customer, len(customers))
	copy(top, customers)
	sort.SliceStable(top, func(i, j int) bool { return top[i].TotalSpent > top[j].TotalSpent })
	if len(top) > 10 {
		top = top[:10]
	}
	ins.TopCustomers = top

	return ins
}

// DailySales summarizes the sales recorded on one date.
type DailySales struct {
	Date              string        `json:"date"`
	TotalRevenue      float64       `json:"totalRevenue"`
	TotalTransactions int           `json:"totalTransactions"`
	AvgTransaction    float64       `json:"avgTransaction"`
	Sales             []models.Sale `json:"sales"`
}

// BuildDailySales filters sales to the given date by exact string match and
// totals them. AvgTransaction is zero when no sales match.
func BuildDailySales(sales []models.Sale, date string) DailySales {
	summary := DailySales{Date: date, Sales: []models.Sale{}}
	for _, sale := range sales {
		if sale.Date != date {
			continue
		}
		summary.Sales = append(summary.Sales, sale)
		summary.TotalRevenue += sale.Total
		summary.TotalTransactions++
	}
	if summary.TotalTransactions > 0 {
		summary.AvgTransaction = summary.TotalRevenue / float64(summary.TotalTransactions)
	}
	return summary
}
