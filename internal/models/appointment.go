package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Public reference handed to the customer after booking.
	Ref string `gorm:"size:36;uniqueIndex;not null" json:"ref"`

	CustomerName        string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone       string `gorm:"size:20;not null;index" json:"customer_phone"`
	CustomerEmail       string `gorm:"size:120;not null;index" json:"customer_email"`
	IsFirstTimeCustomer bool   `gorm:"default:true" json:"is_first_time_customer"`

	AddressStreet     string `gorm:"size:200;not null" json:"address_street"`
	AddressCity       string `gorm:"size:100;not null" json:"address_city"`
	AddressPostalCode string `gorm:"size:20;not null" json:"address_postal_code"`
	AddressGmapsLink  string `gorm:"size:500" json:"address_gmaps_link"`

	Notes string `gorm:"type:text" json:"notes"`

	TimeSlotID uint     `gorm:"not null" json:"time_slot_id"`
	TimeSlot   TimeSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"time_slot"`

	BarberID uint   `gorm:"not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber"`

	Status string `gorm:"size:20;default:'PENDING';not null;index" json:"status"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	// Computed once at creation from the attached services.
	EstimatedDuration int             `json:"estimated_duration"`
	EstimatedPrice    decimal.Decimal `gorm:"type:numeric(10,2)" json:"estimated_price"`

	SubmittedAt time.Time  `gorm:"autoCreateTime" json:"submitted_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}
