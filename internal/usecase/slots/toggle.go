package slots

import (
	"context"

	"github.com/odfbarbers/booking-api/internal/audit"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/models"
)

type ToggleAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleAvailability(repo domain.Repository, audit *audit.Dispatcher) *ToggleAvailability {
	return &ToggleAvailability{repo: repo, audit: audit}
}

// Execute flips the manual availability flag. Turning a slot off with
// live appointments leaves them intact; it only blocks new bookings.
func (uc *ToggleAvailability) Execute(
	ctx context.Context,
	slotID uint,
	actor string,
) (*models.TimeSlot, error) {

	slot, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	slot.IsAvailable = !slot.IsAvailable

	if err := uc.repo.UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "slot_toggled",
		Entity:   "time_slot",
		EntityID: &slot.ID,
	})

	return slot, nil
}
