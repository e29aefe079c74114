package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"opsdesk/internal/models"
)

// InventoryStore is the inventory repository plus the stock-top-up shortcut.
type InventoryStore struct {
	*Store[models.InventoryItem]
}

// NewInventory builds the inventory repository. TotalValue is owned by the
// server: recomputed on create and on any update touching quantity or
// unit_price. The status string is deliberately left alone; it may drift
// from quantity and reorder_point until a caller overrides it.
func NewInventory(deps Deps) *InventoryStore {
	s := newStore(deps, "inventory", "inventory", hooks[models.InventoryItem]{
		prepareCreate: func(item *models.InventoryItem) error {
			if strings.TrimSpace(item.Name) == "" {
				return invalid("name", "required")
			}
			if strings.TrimSpace(item.SKU) == "" {
				return invalid("sku", "required")
			}
			if item.Quantity < 0 {
				return invalid("quantity", "must not be negative")
			}
			if item.UnitPrice < 0 {
				return invalid("unit_price", "must not be negative")
			}
			if item.ID == uuid.Nil {
				item.ID = uuid.New()
			}
			if item.Status == "" {
				item.Status = models.StockInStock
			}
			item.TotalValue = float64(item.Quantity) * item.UnitPrice
			item.LastUpdated = today()
			return nil
		},
		prepareUpdate: prepareInventoryUpdate,
		describe: func(item models.InventoryItem) map[string]any {
			return map[string]any{"name": item.Name, "sku": item.SKU}
		},
	})
	return &InventoryStore{s}
}

// prepareInventoryUpdate recomputes total_value from the effective quantity
// and unit price, falling back to the stored value for whichever field the
// update does not touch, and stamps last_updated.
func prepareInventoryUpdate(prior models.InventoryItem, fields map[string]any) (map[string]any, error) {
	quantity := prior.Quantity
	unitPrice := prior.UnitPrice
	touched := false

	if v, ok := fields["quantity"]; ok {
		n, ok := asInt(v)
		if !ok || n < 0 {
			return nil, invalid("quantity", "must be a non-negative whole number")
		}
		quantity = n
		// Write the coerced value back so the stored quantity is the one
		// the total was computed from.
		fields["quantity"] = n
		touched = true
	}
	if v, ok := fields["unit_price"]; ok {
		n, ok := asFloat(v)
		if !ok || n < 0 {
			return nil, invalid("unit_price", "must be a non-negative number")
		}
		unitPrice = n
		touched = true
	}
	if touched {
		fields["total_value"] = float64(quantity) * unitPrice
	}
	fields["last_updated"] = today()
	return fields, nil
}

// AddStock adds quantity to the item's cached stock level and writes the new
// total through Update. The current quantity is read from the snapshot, not
// refetched; an id missing from the snapshot fails with "item not found".
func (s *InventoryStore) AddStock(ctx context.Context, id uuid.UUID, quantity int) (models.InventoryItem, error) {
	var zero models.InventoryItem
	if quantity <= 0 {
		return zero, invalid("quantity", "must be positive")
	}

	item, ok := s.cache.find(id)
	if !ok {
		return zero, fmt.Errorf("item not found: %w", ErrNotFound)
	}

	return s.Update(ctx, id, addStockFields(item, quantity))
}

// addStockFields builds the partial update for a stock top-up: the cached
// quantity plus the delta.
func addStockFields(item models.InventoryItem, quantity int) map[string]any {
	return map[string]any{"quantity": item.Quantity + quantity}
}
