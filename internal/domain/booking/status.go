package booking

import (
	"strings"
	"time"

	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/models"
)

// ===============================
// Appointment status
// ===============================

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusConfirmed   Status = "CONFIRMED"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
	StatusRescheduled Status = "RESCHEDULED"
	StatusNoShow      Status = "NO_SHOW"
)

var statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusRescheduled,
	StatusNoShow,
}

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus matches case-insensitively against member names. Unknown
// values are rejected at the boundary.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range statuses {
		if st == known {
			return known, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// Transition moves an appointment to a new status and stamps the
// matching timestamp. Any status may move to any other; re-entering
// CONFIRMED/COMPLETED/CANCELLED overwrites the earlier stamp.
func Transition(ap *models.Appointment, to Status, now time.Time) {
	ap.Status = string(to)

	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
}
