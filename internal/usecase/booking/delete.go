package booking

import (
	"context"

	"github.com/odfbarbers/booking-api/internal/audit"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes an appointment and releases its capacity unit in the
// same transaction, whatever status the appointment is in.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actor string,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
