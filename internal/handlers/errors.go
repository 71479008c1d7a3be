package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/odfbarbers/booking-api/internal/httperr"
	ucBooking "github.com/odfbarbers/booking-api/internal/usecase/booking"
)

var businessMessages = map[string]string{
	"slot_not_found":        "Time slot not found.",
	"barber_not_found":      "Barber not found.",
	"service_not_found":     "One or more services were not found.",
	"appointment_not_found": "Appointment not found.",
	"slot_full":             "This time slot is fully booked.",
	"slot_unavailable":      "This time slot is not open for booking.",
	"slot_barber_mismatch":  "The chosen slot belongs to a different barber.",
	"duplicate_slot":        "A slot already exists for this date, period and barber.",
	"slot_has_appointments": "The slot still has appointments attached.",
	"capacity_below_booked": "Capacity cannot drop below the current booking count.",
	"barber_inactive":       "This barber is not taking new bookings.",
	"service_inactive":      "One or more services are no longer offered.",
	"invalid_period":        "Unknown time-slot period.",
	"invalid_status":        "Unknown appointment status.",
	"past_date":             "Slots cannot be created for past dates.",
	"invalid_capacity":      "Capacity must be at least 1.",
	"invalid_date_range":    "The end date is before the start date.",
}

var notFoundCodes = map[string]bool{
	"slot_not_found":        true,
	"barber_not_found":      true,
	"service_not_found":     true,
	"appointment_not_found": true,
}

var conflictCodes = map[string]bool{
	"slot_full":             true,
	"slot_unavailable":      true,
	"slot_barber_mismatch":  true,
	"duplicate_slot":        true,
	"slot_has_appointments": true,
	"capacity_below_booked": true,
	"barber_inactive":       true,
	"service_inactive":      true,
}

// respondError maps use-case failures onto the wire: field errors and
// business codes get specific statuses, anything else becomes a
// generic 500 without internal detail.
func respondError(c *gin.Context, err error) {
	var fieldErrs ucBooking.FieldErrors
	if errors.As(err, &fieldErrs) {
		httperr.Validation(c, fieldErrs.Fields)
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		msg := businessMessages[code]
		if msg == "" {
			msg = "Request could not be completed."
		}
		switch {
		case notFoundCodes[code]:
			httperr.NotFound(c, code, msg)
		case conflictCodes[code]:
			httperr.Conflict(c, code, msg)
		default:
			httperr.BadRequest(c, code, msg)
		}
		return
	}

	log.Printf("internal error: %v", err)
	httperr.Internal(c, "internal_error", "Something went wrong.")
}
