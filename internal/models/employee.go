package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a staff record. Skills is a set of strings; Achievements keeps
// its insertion order.
type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	Email         string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Phone         string    `gorm:"type:text" json:"phone"`
	Position      string    `gorm:"type:text" json:"position"`
	Department    string    `gorm:"type:text" json:"department"`
	Manager       string    `gorm:"type:text" json:"manager"`
	HireDate      string    `gorm:"type:text" json:"hire_date"`
	Salary        float64   `gorm:"type:numeric;not null;default:0" json:"salary"`
	Status        string    `gorm:"type:text;not null;default:active" json:"status"`
	Address       string    `gorm:"type:text" json:"address"`
	Performance   float64   `gorm:"type:numeric;not null;default:0" json:"performance"`
	Skills        []string  `gorm:"serializer:json;type:jsonb" json:"skills"`
	Achievements  []string  `gorm:"serializer:json;type:jsonb" json:"achievements"`
	DirectReports int       `gorm:"not null;default:0" json:"direct_reports"`
	CreatedAt     time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

func (e Employee) EntityID() uuid.UUID { return e.ID }
