package domain

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in UTC, truncated to the microsecond
// precision PostgreSQL stores.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
