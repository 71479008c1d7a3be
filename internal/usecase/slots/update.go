package slots

import (
	"context"
	"time"

	"github.com/odfbarbers/booking-api/internal/audit"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/models"
)

type UpdateSlotInput struct {
	Date            *time.Time
	Period          *domain.Period
	BarberID        *uint
	MaxAppointments *int
}

type UpdateSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSlot(repo domain.Repository, audit *audit.Dispatcher) *UpdateSlot {
	return &UpdateSlot{repo: repo, audit: audit}
}

func (uc *UpdateSlot) Execute(
	ctx context.Context,
	slotID uint,
	in UpdateSlotInput,
	actor string,
) (*models.TimeSlot, error) {

	slot, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		slot.Date = domain.UTCDate(*in.Date)
	}
	if in.Period != nil {
		slot.Period = string(*in.Period)
	}
	if in.BarberID != nil {
		barber, err := uc.repo.GetBarber(ctx, *in.BarberID)
		if err != nil {
			return nil, err
		}
		if !barber.IsActive {
			return nil, httperr.ErrBusiness("barber_inactive")
		}
		slot.BarberID = barber.ID
	}
	if in.MaxAppointments != nil {
		// Capacity can never drop below the live booking count.
		if *in.MaxAppointments < slot.CurrentAppointments {
			return nil, httperr.ErrBusiness("capacity_below_booked")
		}
		if *in.MaxAppointments < 1 {
			return nil, httperr.ErrBusiness("invalid_capacity")
		}
		slot.MaxAppointments = *in.MaxAppointments
	}

	exists, err := uc.repo.SlotExists(
		ctx,
		slot.Date,
		domain.Period(slot.Period),
		slot.BarberID,
		slot.ID,
	)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("duplicate_slot")
	}

	if err := uc.repo.UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "slot_updated",
		Entity:   "time_slot",
		EntityID: &slot.ID,
	})

	return slot, nil
}
