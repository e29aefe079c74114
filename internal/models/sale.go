package models

import (
	"time"

	"github.com/google/uuid"
)

// SaleItem is one line of a sale.
type SaleItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Sale is a completed or in-flight point-of-sale transaction. Date and Time
// are stored as plain strings; the daily sales summary compares Date against
// the device-local date by exact match.
type Sale struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Customer      string     `gorm:"type:text;not null" json:"customer"`
	CustomerEmail string     `gorm:"type:text" json:"customer_email"`
	CustomerPhone string     `gorm:"type:text" json:"customer_phone"`
	Items         []SaleItem `gorm:"serializer:json;type:jsonb" json:"items"`
	Total         float64    `gorm:"type:numeric;not null;default:0" json:"total"`
	Status        string     `gorm:"type:text;not null;default:pending" json:"status"`
	Date          string     `gorm:"type:text;not null;index" json:"date"`
	Time          string     `gorm:"type:text" json:"time"`
	PaymentMethod string     `gorm:"type:text" json:"payment_method"`
	Salesperson   string     `gorm:"type:text" json:"salesperson"`
	Location      string     `gorm:"type:text" json:"location"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `gorm:"type:timestamptz;not null;default:now();autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"type:timestamptz;not null;default:now();autoUpdateTime" json:"updated_at"`
}

func (Sale) TableName() string { return "sales" }

func (s Sale) EntityID() uuid.UUID { return s.ID }
