package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// LocalClock reports wall time in the process time zone. Prayer timings
// are published as local "HH:MM" values, so they compare against this.
type LocalClock struct{}

func (LocalClock) Now() time.Time {
	return time.Now()
}
