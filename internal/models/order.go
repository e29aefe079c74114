package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses accepted by the API.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Order priorities accepted by the API.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Order is a purchase order placed by a customer.
type Order struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Customer  string    `gorm:"type:text;not null" json:"customer"`
	Items     int       `gorm:"not null;default:0" json:"items"`
	Total     float64   `gorm:"type:numeric;not null;default:0" json:"total"`
	Status    string    `gorm:"type:text;not null;default:pending" json:"status"`
	Date      string    `gorm:"type:text;not null;index" json:"date"`
	Priority  string    `gorm:"type:text;not null;default:medium" json:"priority"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

func (o Order) EntityID() uuid.UUID { return o.ID }
