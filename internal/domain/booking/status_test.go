package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
	"github.com/odfbarbers/booking-api/internal/models"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    booking.Status
		wantErr bool
	}{
		{input: "PENDING", want: booking.StatusPending},
		{input: "confirmed", want: booking.StatusConfirmed},
		{input: "Completed", want: booking.StatusCompleted},
		{input: "no_show", want: booking.StatusNoShow},
		{input: " rescheduled ", want: booking.StatusRescheduled},
		{input: "cancelled", want: booking.StatusCancelled},
		{input: "done", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := booking.ParseStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, "invalid_status"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(booking.StatusPending)}

	booking.Transition(ap, booking.StatusConfirmed, now)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)
	assert.Equal(t, "CONFIRMED", ap.Status)
	assert.Nil(t, ap.CompletedAt)
	assert.Nil(t, ap.CancelledAt)

	later := now.Add(2 * time.Hour)
	booking.Transition(ap, booking.StatusCompleted, later)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, later, *ap.CompletedAt)
	// The earlier stamp stays.
	assert.Equal(t, now, *ap.ConfirmedAt)
}

func TestTransitionReentryOverwritesStamp(t *testing.T) {
	first := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(30 * time.Minute)

	ap := &models.Appointment{Status: string(booking.StatusPending)}

	booking.Transition(ap, booking.StatusConfirmed, first)
	booking.Transition(ap, booking.StatusConfirmed, second)

	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, second, *ap.ConfirmedAt)
}

func TestTransitionIsPermissive(t *testing.T) {
	now := time.Now().UTC()

	// Even terminal states can move anywhere; the engine does not
	// forbid transitions.
	ap := &models.Appointment{Status: string(booking.StatusCompleted)}
	booking.Transition(ap, booking.StatusPending, now)
	assert.Equal(t, "PENDING", ap.Status)

	booking.Transition(ap, booking.StatusNoShow, now)
	assert.Equal(t, "NO_SHOW", ap.Status)
	// NO_SHOW and RESCHEDULED carry no dedicated stamp.
	assert.Nil(t, ap.ConfirmedAt)
	assert.Nil(t, ap.CompletedAt)
	assert.Nil(t, ap.CancelledAt)
}
