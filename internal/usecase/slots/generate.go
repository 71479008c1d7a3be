package slots

import (
	"context"
	"time"

	"github.com/odfbarbers/booking-api/internal/audit"
	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/models"
)

const DefaultDaysAhead = 14

type GenerateSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewGenerateSlots(repo domain.Repository, audit *audit.Dispatcher) *GenerateSlots {
	return &GenerateSlots{repo: repo, audit: audit, clock: domain.SystemClock{}}
}

// Execute creates a slot for every day in [today, today+daysAhead) and
// every period, skipping triples that already exist. Idempotent and
// additive: existing slots are never touched. Returns the number of
// slots created.
func (uc *GenerateSlots) Execute(
	ctx context.Context,
	barberID uint,
	daysAhead int,
	actor string,
) (int, error) {

	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return 0, err
	}
	if !barber.IsActive {
		return 0, httperr.ErrBusiness("barber_inactive")
	}

	today := domain.UTCDate(uc.clock.Now())
	created := 0

	for day := 0; day < daysAhead; day++ {
		date := today.Add(time.Duration(day) * 24 * time.Hour)

		for _, period := range domain.Periods() {
			slot := &models.TimeSlot{
				Date:            date,
				Period:          string(period),
				IsAvailable:     true,
				MaxAppointments: DefaultCapacity,
				BarberID:        barber.ID,
			}

			ok, err := uc.repo.CreateSlotIfAbsent(ctx, slot)
			if err != nil {
				return created, err
			}
			if ok {
				created++
			}
		}
	}

	uc.audit.Dispatch(audit.Event{
		Actor:  actor,
		Action: "slots_generated",
		Entity: "time_slot",
		Metadata: map[string]any{
			"barber_id":  barberID,
			"days_ahead": daysAhead,
			"created":    created,
		},
	})

	return created, nil
}
