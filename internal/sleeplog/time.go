// Package sleeplog parses free-text sleep logs into days of time ranges and
// derives durations from them.
//
// Parsing never fails. Text that does not look like a time yields an invalid
// value, and any arithmetic touching an invalid value is itself invalid.
package sleeplog

import (
	"regexp"
	"strconv"
)

const (
	// MinutesPerDay is the length of the charted day.
	MinutesPerDay = 24 * 60
	// SegmentMinutes is the width of one heat map bucket.
	SegmentMinutes = 15
	// SegmentCount is the number of buckets covering a day.
	SegmentCount = MinutesPerDay / SegmentMinutes
)

var timeOfDayPattern = regexp.MustCompile(`(\d+):(\d\d)`)

// TimeOfDay is an hour and minute taken from "HH:MM" text.
// Hours are not bounded to 0-23. The zero value is invalid.
type TimeOfDay struct {
	Hour   int
	Minute int
	valid  bool
}

// NewTimeOfDay returns a valid TimeOfDay.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, valid: true}
}

// ParseTimeOfDay reads the first "H:MM" occurrence in text.
// Returns an invalid TimeOfDay when there is none.
func ParseTimeOfDay(text string) TimeOfDay {
	m := timeOfDayPattern.FindStringSubmatch(text)
	if m == nil {
		return TimeOfDay{}
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return TimeOfDay{}
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return TimeOfDay{}
	}
	return NewTimeOfDay(hour, minute)
}

// Valid reports whether the time was parsed successfully.
func (t TimeOfDay) Valid() bool {
	return t.valid
}

// Minutes returns the minutes since midnight.
func (t TimeOfDay) Minutes() Minutes {
	if !t.valid {
		return InvalidMinutes
	}
	return MinutesOf(t.Hour*60 + t.Minute)
}

// Percent maps a time of day to its position within a 24 hour day, 0 to 100.
// Times past midnight are not wrapped.
func Percent(text string) (float64, bool) {
	n, ok := ParseTimeOfDay(text).Minutes().Int()
	if !ok {
		return 0, false
	}
	return float64(n) / float64(MinutesPerDay) * 100, true
}

// SegmentIndex maps a time of day to its 15 minute bucket.
// "00:00" is 0, "00:15" is 1 and "23:45" is 95. Minutes within a bucket are
// truncated, so "00:14" is 0.
func SegmentIndex(text string) (int, bool) {
	n, ok := ParseTimeOfDay(text).Minutes().Int()
	if !ok {
		return 0, false
	}
	return n / SegmentMinutes, true
}
