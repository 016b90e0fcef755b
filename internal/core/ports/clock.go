package ports

import "time"

// Clock supplies the current time to handlers that validate deadlines or
// record arrival timestamps, keeping them deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
