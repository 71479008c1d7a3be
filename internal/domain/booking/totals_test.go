package booking_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/models"
)

func TestTotals(t *testing.T) {
	services := []models.Service{
		{Name: "Classic Haircut", Price: decimal.RequireFromString("15000.00"), DurationMinutes: 45},
		{Name: "Beard Trim", Price: decimal.RequireFromString("10000.00"), DurationMinutes: 30},
	}

	duration, price := booking.Totals(services)

	assert.Equal(t, 75, duration)
	assert.True(t, price.Equal(decimal.RequireFromString("25000.00")),
		"got %s", price)
}

func TestTotalsEmpty(t *testing.T) {
	duration, price := booking.Totals(nil)

	assert.Equal(t, 0, duration)
	assert.True(t, price.IsZero())
}

func TestTotalsNoFloatDrift(t *testing.T) {
	// 0.1 summed a thousand times is exactly 100 in decimal.
	svc := models.Service{Price: decimal.RequireFromString("0.10"), DurationMinutes: 15}
	services := make([]models.Service, 1000)
	for i := range services {
		services[i] = svc
	}

	_, price := booking.Totals(services)
	assert.True(t, price.Equal(decimal.RequireFromString("100.00")),
		"got %s", price)
}

func TestTotalsIdempotent(t *testing.T) {
	services := []models.Service{
		{Price: decimal.RequireFromString("19.99"), DurationMinutes: 20},
		{Price: decimal.RequireFromString("0.01"), DurationMinutes: 15},
	}

	d1, p1 := booking.Totals(services)
	d2, p2 := booking.Totals(services)

	assert.Equal(t, d1, d2)
	assert.True(t, p1.Equal(p2))
	assert.True(t, p1.Equal(decimal.RequireFromString("20.00")))
}
