package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier reliability grades.
const (
	ReliabilityExcellent = "excellent"
	ReliabilityGood      = "good"
	ReliabilityFair      = "fair"
	ReliabilityPoor      = "poor"
)

// Supplier is a vendor the organization orders from.
type Supplier struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Contact     string    `gorm:"type:text" json:"contact"`
	Email       string    `gorm:"type:text" json:"email"`
	Phone       string    `gorm:"type:text" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
	Category    string    `gorm:"type:text" json:"category"`
	Status      string    `gorm:"type:text;not null;default:pending" json:"status"`
	Rating      float64   `gorm:"type:numeric;not null;default:0" json:"rating"`
	TotalOrders int       `gorm:"not null;default:0" json:"total_orders"`
	TotalSpent  float64   `gorm:"type:numeric;not null;default:0" json:"total_spent"`
	LastOrder   string    `gorm:"type:text;index" json:"last_order"`
	Reliability string    `gorm:"type:text;not null;default:good" json:"reliability"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime" json:"updated_at"`
}

func (Supplier) TableName() string { return "suppliers" }

func (s Supplier) EntityID() uuid.UUID { return s.ID }
