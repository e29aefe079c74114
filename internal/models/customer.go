package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer loyalty tiers.
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// Customer is a buyer account. Order counters and date fields are assigned
// server-side defaults at creation and updated by later mutations.
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	Email         string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Phone         string    `gorm:"type:text" json:"phone"`
	Company       string    `gorm:"type:text" json:"company"`
	Address       string    `gorm:"type:text" json:"address"`
	Status        string    `gorm:"type:text;not null;default:active" json:"status"`
	Tier          string    `gorm:"type:text;not null;default:bronze" json:"tier"`
	TotalOrders   int       `gorm:"not null;default:0" json:"total_orders"`
	TotalSpent    float64   `gorm:"type:numeric;not null;default:0" json:"total_spent"`
	AvgOrderValue float64   `gorm:"type:numeric;not null;default:0" json:"avg_order_value"`
	CustomerSince string    `gorm:"type:text" json:"customer_since"`
	FirstOrder    string    `gorm:"type:text" json:"first_order"`
	LastOrder     string    `gorm:"type:text" json:"last_order"`
	Tags          []string  `gorm:"serializer:json;type:jsonb" json:"tags"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

func (c Customer) EntityID() uuid.UUID { return c.ID }
