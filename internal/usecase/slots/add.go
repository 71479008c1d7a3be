package slots

import (
	"context"
	"time"

	"github.com/odfbarbers/booking-api/internal/audit"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/models"
)

const DefaultCapacity = 2

type AddSlotInput struct {
	Date            time.Time
	Period          domain.Period
	BarberID        uint
	MaxAppointments int
	IsAvailable     bool
}

type AddSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewAddSlot(repo domain.Repository, audit *audit.Dispatcher) *AddSlot {
	return &AddSlot{repo: repo, audit: audit, clock: domain.SystemClock{}}
}

func (uc *AddSlot) Execute(
	ctx context.Context,
	in AddSlotInput,
	actor string,
) (*models.TimeSlot, error) {

	date := domain.UTCDate(in.Date)

	// Construction-time check only; existing past slots stay valid.
	if date.Before(domain.UTCDate(uc.clock.Now())) {
		return nil, httperr.ErrBusiness("past_date")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.IsActive {
		return nil, httperr.ErrBusiness("barber_inactive")
	}

	exists, err := uc.repo.SlotExists(ctx, date, in.Period, in.BarberID, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("duplicate_slot")
	}

	capacity := in.MaxAppointments
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	slot := &models.TimeSlot{
		Date:            date,
		Period:          string(in.Period),
		IsAvailable:     in.IsAvailable,
		MaxAppointments: capacity,
		BarberID:        in.BarberID,
	}

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "slot_created",
		Entity:   "time_slot",
		EntityID: &slot.ID,
	})

	return slot, nil
}
