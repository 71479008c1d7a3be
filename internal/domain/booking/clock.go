package booking

import "time"

// Clock lets use cases stamp times without reaching for time.Now
// directly, which keeps transition tests deterministic.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
