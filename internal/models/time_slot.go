package models

import "time"

type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_slot_date_period_barber" json:"date"`
	Period string    `gorm:"size:20;not null;uniqueIndex:uq_slot_date_period_barber" json:"period"`

	IsAvailable bool `gorm:"default:true;not null" json:"is_available"`

	MaxAppointments int `gorm:"default:2;not null" json:"max_appointments"`

	// Derived counter. Written only by the repository's reserve/release
	// conditional updates, inside the appointment transaction.
	CurrentAppointments int `gorm:"default:0;not null;check:chk_slot_capacity,current_appointments <= max_appointments" json:"current_appointments"`

	BarberID uint   `gorm:"not null;uniqueIndex:uq_slot_date_period_barber" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *TimeSlot) IsFullyBooked() bool {
	return s.CurrentAppointments >= s.MaxAppointments
}
