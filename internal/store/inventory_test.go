package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"opsdesk/internal/models"
)

func TestPrepareInventoryUpdateRecomputesTotalValue(t *testing.T) {
	prior := models.InventoryItem{Quantity: 10, UnitPrice: 4}

	tests := []struct {
		name      string
		fields    map[string]any
		wantTotal float64
		wantSet   bool
	}{
		{
			name:      "quantity only uses stored price",
			fields:    map[string]any{"quantity": float64(6)},
			wantTotal: 24,
			wantSet:   true,
		},
		{
			name:      "price only uses stored quantity",
			fields:    map[string]any{"unit_price": 2.5},
			wantTotal: 25,
			wantSet:   true,
		},
		{
			name:      "both fields use both new values",
			fields:    map[string]any{"quantity": float64(3), "unit_price": float64(7)},
			wantTotal: 21,
			wantSet:   true,
		},
		{
			name:    "unrelated fields leave total_value alone",
			fields:  map[string]any{"location": "aisle 9"},
			wantSet: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := prepareInventoryUpdate(prior, tt.fields)
			if err != nil {
				t.Fatalf("prepareInventoryUpdate() error = %v", err)
			}
			total, set := got["total_value"]
			if set != tt.wantSet {
				t.Fatalf("total_value set = %v, want %v", set, tt.wantSet)
			}
			if set && total != tt.wantTotal {
				t.Fatalf("total_value = %v, want %v", total, tt.wantTotal)
			}
			if _, ok := got["last_updated"]; !ok {
				t.Fatal("last_updated not stamped")
			}
		})
	}
}

func TestPrepareInventoryUpdateRejectsNegatives(t *testing.T) {
	prior := models.InventoryItem{Quantity: 10, UnitPrice: 4}

	if _, err := prepareInventoryUpdate(prior, map[string]any{"quantity": float64(-1)}); !IsValidation(err) {
		t.Fatalf("negative quantity: err = %v, want validation error", err)
	}
	if _, err := prepareInventoryUpdate(prior, map[string]any{"unit_price": float64(-2)}); !IsValidation(err) {
		t.Fatalf("negative unit_price: err = %v, want validation error", err)
	}
}

// A fractional quantity must be rejected outright: truncating it for the
// total while the raw value reaches the integer column would store a row
// whose total_value disagrees with quantity * unit_price.
func TestPrepareInventoryUpdateRejectsFractionalQuantity(t *testing.T) {
	prior := models.InventoryItem{Quantity: 10, UnitPrice: 4}

	fields := map[string]any{"quantity": 5.7}
	if _, err := prepareInventoryUpdate(prior, fields); !IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if fields["quantity"] != 5.7 {
		t.Fatalf("quantity rewritten on rejection: %v", fields["quantity"])
	}
}

func TestPrepareInventoryUpdateCoercesWholeQuantity(t *testing.T) {
	prior := models.InventoryItem{Quantity: 10, UnitPrice: 4}

	got, err := prepareInventoryUpdate(prior, map[string]any{"quantity": float64(6)})
	if err != nil {
		t.Fatalf("prepareInventoryUpdate() error = %v", err)
	}
	if got["quantity"] != 6 {
		t.Fatalf("quantity = %v (%T), want int 6", got["quantity"], got["quantity"])
	}
	if got["total_value"] != 24.0 {
		t.Fatalf("total_value = %v, want 24", got["total_value"])
	}
}

func TestInventoryCreateDefaults(t *testing.T) {
	s := NewInventory(Deps{})

	item := models.InventoryItem{Name: "widget", SKU: "W-1", Quantity: 12, UnitPrice: 2.5}
	if err := s.hooks.prepareCreate(&item); err != nil {
		t.Fatalf("prepareCreate() error = %v", err)
	}

	if item.TotalValue != 30 {
		t.Fatalf("TotalValue = %v, want 30", item.TotalValue)
	}
	if item.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("id not assigned")
	}
	if item.Status != models.StockInStock {
		t.Fatalf("Status = %q", item.Status)
	}
	if item.LastUpdated == "" {
		t.Fatal("LastUpdated not stamped")
	}
}

func TestInventoryCreateValidation(t *testing.T) {
	s := NewInventory(Deps{})

	tests := []struct {
		name string
		item models.InventoryItem
	}{
		{name: "missing name", item: models.InventoryItem{SKU: "X"}},
		{name: "missing sku", item: models.InventoryItem{Name: "x"}},
		{name: "negative quantity", item: models.InventoryItem{Name: "x", SKU: "X", Quantity: -1}},
		{name: "negative price", item: models.InventoryItem{Name: "x", SKU: "X", UnitPrice: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			if err := s.hooks.prepareCreate(&item); !IsValidation(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestAddStockAddsToCachedQuantity(t *testing.T) {
	item := models.InventoryItem{ID: uuid.New(), Name: "widget", SKU: "W-1", Quantity: 8, UnitPrice: 4}

	fields := addStockFields(item, 5)
	if fields["quantity"] != 13 {
		t.Fatalf("quantity = %v, want cached 8 + 5 = 13", fields["quantity"])
	}

	got, err := prepareInventoryUpdate(item, fields)
	if err != nil {
		t.Fatalf("prepareInventoryUpdate() error = %v", err)
	}
	if got["quantity"] != 13 {
		t.Fatalf("quantity = %v, want 13", got["quantity"])
	}
	if got["total_value"] != 52.0 {
		t.Fatalf("total_value = %v, want 13 * 4 = 52", got["total_value"])
	}
}

func TestAddStockMissingFromCache(t *testing.T) {
	s := NewInventory(Deps{})

	_, err := s.AddStock(t.Context(), uuid.New(), 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAddStockRejectsNonPositiveQuantity(t *testing.T) {
	s := NewInventory(Deps{})

	item := models.InventoryItem{ID: uuid.New(), Name: "widget", SKU: "W-1", Quantity: 8}
	s.cache.replaceAll([]models.InventoryItem{item})

	if _, err := s.AddStock(t.Context(), item.ID, 0); !IsValidation(err) {
		t.Fatalf("zero quantity: err = %v, want validation error", err)
	}
	if _, err := s.AddStock(t.Context(), item.ID, -3); !IsValidation(err) {
		t.Fatalf("negative quantity: err = %v, want validation error", err)
	}

	cached, ok := s.cache.find(item.ID)
	if !ok || cached.Quantity != 8 {
		t.Fatalf("cache mutated: %+v ok=%v", cached, ok)
	}
}
