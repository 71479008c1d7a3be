package booking

import (
	"strings"

	"github.com/odfbarbers/booking-api/internal/httperr"
)

// ===============================
// Time-slot period
// ===============================

type Period string

const (
	PeriodMorning   Period = "MORNING"
	PeriodAfternoon Period = "AFTERNOON"
	PeriodEvening   Period = "EVENING"
)

// Declaration order is the booking order of the day.
var periods = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}

var periodLabels = map[Period]string{
	PeriodMorning:   "Morning (9AM-12PM)",
	PeriodAfternoon: "Afternoon (12PM-4PM)",
	PeriodEvening:   "Evening (4PM-8PM)",
}

func Periods() []Period {
	out := make([]Period, len(periods))
	copy(out, periods)
	return out
}

// ParsePeriod matches case-insensitively against member names. Unknown
// values are a validation error, never a silent default.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range periods {
		if p == known {
			return known, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_period")
}

// Ordinal is the position in declaration order, used for slot sorting.
func (p Period) Ordinal() int {
	for i, known := range periods {
		if p == known {
			return i
		}
	}
	return len(periods)
}

func (p Period) Label() string {
	return periodLabels[p]
}
