package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"opsdesk/internal/models"
	"opsdesk/internal/store"
)

func TestRespondStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &store.ValidationError{Field: "name", Reason: "required"}, http.StatusBadRequest},
		{"conflict", store.ErrConflict, http.StatusConflict},
		{"wrapped conflict", errors.Join(errors.New("insert orders"), store.ErrConflict), http.StatusConflict},
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondStoreError(rec, tc.err)

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestStockLabel(t *testing.T) {
	tests := []struct {
		name string
		item models.InventoryItem
		want string
	}{
		{"above reorder point", models.InventoryItem{Quantity: 30, ReorderPoint: 10}, "IN STOCK"},
		{"at reorder point", models.InventoryItem{Quantity: 10, ReorderPoint: 10}, "LOW STOCK"},
		// Zero stock with a positive reorder point reports as low, not out.
		{"zero with reorder point", models.InventoryItem{Quantity: 0, ReorderPoint: 10}, "LOW STOCK"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stockLabel(tc.item); got != tc.want {
				t.Errorf("stockLabel(%+v) = %q, want %q", tc.item, got, tc.want)
			}
		})
	}
}
