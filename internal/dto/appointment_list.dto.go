package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppointmentListDTO struct {
	ID                uint            `json:"id"`
	Ref               string          `json:"ref"`
	CustomerName      string          `json:"customer_name"`
	CustomerPhone     string          `json:"customer_phone"`
	Date              time.Time       `json:"date"`
	Period            string          `json:"period"`
	BarberName        string          `json:"barber_name"`
	Status            string          `json:"status"`
	Services          []string        `json:"services"`
	EstimatedDuration int             `json:"estimated_duration"`
	EstimatedPrice    decimal.Decimal `json:"estimated_price"`
	SubmittedAt       time.Time       `json:"submitted_at"`
}
