package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Currency stays decimal end to end; never a float column.
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`

	IsActive bool `gorm:"default:true;not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
