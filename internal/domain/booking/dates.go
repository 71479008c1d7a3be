package booking

import "time"

// All slot dates are calendar days pinned to UTC midnight.

func UTCDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return UTCDate(time.Now())
}
