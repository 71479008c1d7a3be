package booking

import (
	"github.com/shopspring/decimal"

	"github.com/odfbarbers/booking-api/internal/models"
)

// Totals sums duration and price over the attached services. Price is
// exact decimal arithmetic; repeated sums never drift.
func Totals(services []models.Service) (durationMinutes int, price decimal.Decimal) {
	price = decimal.Zero
	for _, svc := range services {
		durationMinutes += svc.DurationMinutes
		price = price.Add(svc.Price)
	}
	return durationMinutes, price
}
