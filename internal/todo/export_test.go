package todo

import "time"

// SetClock replaces the clock used by NewID and returns a restore func.
func SetClock(now func() time.Time) (restore func()) {
	prev := timeNow
	timeNow = now
	return func() { timeNow = prev }
}
