package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/httperr"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    booking.Period
		wantErr bool
	}{
		{name: "exact", input: "MORNING", want: booking.PeriodMorning},
		{name: "lowercase", input: "afternoon", want: booking.PeriodAfternoon},
		{name: "mixed case", input: "Evening", want: booking.PeriodEvening},
		{name: "surrounding spaces", input: "  MORNING ", want: booking.PeriodMorning},
		{name: "unknown", input: "NIGHT", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "label not name", input: "Morning (9AM-12PM)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.ParsePeriod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, "invalid_period"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodOrdinal(t *testing.T) {
	// Booking order of the day, not alphabetical.
	assert.Equal(t, 0, booking.PeriodMorning.Ordinal())
	assert.Equal(t, 1, booking.PeriodAfternoon.Ordinal())
	assert.Equal(t, 2, booking.PeriodEvening.Ordinal())

	assert.Equal(t, []booking.Period{
		booking.PeriodMorning,
		booking.PeriodAfternoon,
		booking.PeriodEvening,
	}, booking.Periods())
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Morning (9AM-12PM)", booking.PeriodMorning.Label())
	assert.Equal(t, "Afternoon (12PM-4PM)", booking.PeriodAfternoon.Label())
	assert.Equal(t, "Evening (4PM-8PM)", booking.PeriodEvening.Label())
}
