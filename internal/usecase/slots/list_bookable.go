package slots

import (
	"context"
	"time"

	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/models"
)

type ListBookable struct {
	repo  domain.Repository
	clock domain.Clock
}

func NewListBookable(repo domain.Repository) *ListBookable {
	return &ListBookable{repo: repo, clock: domain.SystemClock{}}
}

// Execute lists slots a customer may book in the closed date range:
// available, not full, ordered by date then period. Pure read; safe to
// call repeatedly.
func (uc *ListBookable) Execute(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.TimeSlot, error) {

	fromDate := domain.UTCDate(from)
	toDate := domain.UTCDate(to)

	if from.IsZero() {
		fromDate = domain.UTCDate(uc.clock.Now())
	}
	if to.IsZero() {
		toDate = fromDate.Add(DefaultDaysAhead * 24 * time.Hour)
	}

	if toDate.Before(fromDate) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	return uc.repo.FindBookable(ctx, fromDate, toDate)
}
