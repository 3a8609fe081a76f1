package game

import "time"

// Timer is a pending scheduled callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock supplies timestamps and schedules callbacks. The driver never counts
// frames; every duration it computes comes from Clock.Now.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (systemClock) Now() time.Time {
	return time.Now()
}
