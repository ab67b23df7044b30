// Package timemath provides the day-wrapping relative-time arithmetic used
// to turn absolute seconds-since-midnight arrival times into "minutes from
// now" values. All functions are pure; callers inject the clock.
package timemath

import "time"

const (
	SecondsPerDay = 86400
)

// NowSecondsSinceMidnight returns the wall-clock seconds elapsed since local
// midnight for t, in [0, 86400).
func NowSecondsSinceMidnight(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// RelativeMinutes computes the minutes from nowSec until arrivalSec using the
// mathematical (non-negative) modulo over one day, so an arrival just after
// midnight seen late in the evening yields a small positive value. Result is
// always in [0, 1439].
func RelativeMinutes(arrivalSec, nowSec int) int {
	delta := (arrivalSec - nowSec) % SecondsPerDay
	if delta < 0 {
		delta += SecondsPerDay
	}
	return delta / 60
}
