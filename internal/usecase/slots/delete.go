package slots

import (
	"context"

	"github.com/odfbarbers/booking-api/internal/audit"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
)

type DeleteSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSlot(repo domain.Repository, audit *audit.Dispatcher) *DeleteSlot {
	return &DeleteSlot{repo: repo, audit: audit}
}

// Execute removes a slot. Slots holding appointments are a conflict;
// the admin must delete or move the appointments first.
func (uc *DeleteSlot) Execute(
	ctx context.Context,
	slotID uint,
	actor string,
) error {

	if err := uc.repo.DeleteEmptySlot(ctx, slotID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "slot_deleted",
		Entity:   "time_slot",
		EntityID: &slotID,
	})

	return nil
}
