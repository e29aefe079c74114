package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"opsdesk/internal/models"
	"opsdesk/internal/reports"
	"opsdesk/pkg/csvutil"
	"opsdesk/pkg/currency"
)

func (a *API) handleDailySales(w http.ResponseWriter, r *http.Request) {
	sales, err := a.stores.Sales.Cached(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	respondJSON(w, http.StatusOK, reports.BuildDailySales(sales, date))
}

func (a *API) handleInventoryStatus(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.Inventory.Cached(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports.BuildInventoryStatus(items))
}

func (a *API) handleCustomerInsights(w http.ResponseWriter, r *http.Request) {
	customers, err := a.stores.Customers.Cached(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports.BuildCustomerInsights(customers))
}

// handleExport streams one of the report datasets as a CSV attachment and
// records an EXPORT audit event.
func (a *API) handleExport(w http.ResponseWriter, r *http.Request) {
	name := pathName(r)

	var (
		header []string
		rows   []csvutil.Row
		err    error
	)
	switch name {
	case "daily-sales":
		header, rows, err = a.dailySalesCSV(r)
	case "inventory-status":
		header, rows, err = a.inventoryStatusCSV(r)
	case "customer-insights":
		header, rows, err = a.customerInsightsCSV(r)
	default:
		respondError(w, http.StatusNotFound, fmt.Errorf("unknown report %q", name))
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}

	a.audit.Record(r.Context(), models.ActionExport, "report", "", map[string]any{"report": name}, models.SeverityLow)

	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := csvutil.Write(w, header, rows); err != nil {
		a.log.Error().Err(err).Str("report", name).Msg("csv export write failed")
	}
}

func (a *API) dailySalesCSV(r *http.Request) ([]string, []csvutil.Row, error) {
	sales, err := a.stores.Sales.Cached(r.Context())
	if err != nil {
		return nil, nil, err
	}
	summary := reports.BuildDailySales(sales, time.Now().Format("2006-01-02"))

	header := []string{"Date", "Customer", "Total", "Payment", "Salesperson"}
	rows := make([]csvutil.Row, 0, len(summary.Sales))
	for _, sale := range summary.Sales {
		rows = append(rows, csvutil.Row{
			sale.Date,
			sale.Customer,
			a.formatMoney(sale.Total),
			sale.PaymentMethod,
			sale.Salesperson,
		})
	}
	return header, rows, nil
}

func (a *API) inventoryStatusCSV(r *http.Request) ([]string, []csvutil.Row, error) {
	items, err := a.stores.Inventory.Cached(r.Context())
	if err != nil {
		return nil, nil, err
	}

	header := []string{"SKU", "Name", "Category", "Quantity", "Unit Price", "Total Value", "Status"}
	rows := make([]csvutil.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, csvutil.Row{
			item.SKU,
			item.Name,
			item.Category,
			strconv.Itoa(item.Quantity),
			a.formatMoney(item.UnitPrice),
			a.formatMoney(item.TotalValue),
			stockLabel(item),
		})
	}
	return header, rows, nil
}

func (a *API) customerInsightsCSV(r *http.Request) ([]string, []csvutil.Row, error) {
	customers, err := a.stores.Customers.Cached(r.Context())
	if err != nil {
		return nil, nil, err
	}

	header := []string{"Name", "Email", "Company", "Tier", "Total Orders", "Total Spent", "Status"}
	rows := make([]csvutil.Row, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, csvutil.Row{
			c.Name,
			c.Email,
			c.Company,
			c.Tier,
			strconv.Itoa(c.TotalOrders),
			a.formatMoney(c.TotalSpent),
			c.Status,
		})
	}
	return header, rows, nil
}

func (a *API) formatMoney(usd float64) string {
	return currency.FormatINR(currency.USDToINR(usd, a.config.USDToINRRate))
}

// stockLabel classifies stock for the exported report. The reorder check
// wins over the exact-zero check.
func stockLabel(item models.InventoryItem) string {
	switch {
	case item.Quantity <= item.ReorderPoint:
		return "LOW STOCK"
	case item.Quantity == 0:
		return "OUT OF STOCK"
	default:
		return "IN STOCK"
	}
}
