package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory stock status labels. The stored status is informational and is
// never derived from quantity server-side; callers may override it manually.
const (
	StockInStock    = "in-stock"
	StockLow        = "low-stock"
	StockOut        = "out-of-stock"
)

// InventoryItem is a stocked product. TotalValue is maintained server-side as
// Quantity * UnitPrice on every mutation touching either field.
type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	SKU          string    `gorm:"type:text;uniqueIndex;not null" json:"sku"`
	Category     string    `gorm:"type:text" json:"category"`
	Description  string    `gorm:"type:text" json:"description"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity"`
	MinQuantity  int       `gorm:"not null;default:0" json:"min_quantity"`
	MaxQuantity  int       `gorm:"not null;default:0" json:"max_quantity"`
	UnitPrice    float64   `gorm:"type:numeric;not null;default:0" json:"unit_price"`
	Supplier     string    `gorm:"type:text" json:"supplier"`
	Location     string    `gorm:"type:text" json:"location"`
	Status       string    `gorm:"type:text;not null;default:in-stock" json:"status"`
	LastUpdated  string    `gorm:"type:text;index" json:"last_updated"`
	ReorderPoint int       `gorm:"not null;default:0" json:"reorder_point"`
	TotalValue   float64   `gorm:"type:numeric;not null;default:0" json:"total_value"`
	ExpiryDate   *string   `gorm:"type:text" json:"expiry_date,omitempty"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime" json:"updated_at"`
}

func (InventoryItem) TableName() string { return "inventory" }

func (i InventoryItem) EntityID() uuid.UUID { return i.ID }
