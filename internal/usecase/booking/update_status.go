package booking

import (
	"context"

	"github.com/odfbarbers/booking-api/internal/audit"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		clock: domain.SystemClock{},
	}
}

// Execute moves an appointment to a new status. Capacity is untouched:
// a cancelled appointment keeps its slot unit until it is deleted.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	newStatus domain.Status,
	actor string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	domain.Transition(ap, newStatus, uc.clock.Now())

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_status_" + string(newStatus),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
