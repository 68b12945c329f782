package sleeplog

import "fmt"

// Minutes is a duration or clock value in minutes that may be invalid.
type Minutes struct {
	n     int
	valid bool
}

// InvalidMinutes is the result of arithmetic on unparsable input.
var InvalidMinutes = Minutes{}

// MinutesOf returns a valid Minutes value.
func MinutesOf(n int) Minutes {
	return Minutes{n: n, valid: true}
}

// Int returns the minute count and whether it is valid.
func (m Minutes) Int() (int, bool) {
	return m.n, m.valid
}

// Valid reports whether m holds a number.
func (m Minutes) Valid() bool {
	return m.valid
}

// Add returns m+o, invalid if either operand is.
func (m Minutes) Add(o Minutes) Minutes {
	if !m.valid || !o.valid {
		return InvalidMinutes
	}
	return MinutesOf(m.n + o.n)
}

// Sub returns m-o, invalid if either operand is.
func (m Minutes) Sub(o Minutes) Minutes {
	if !m.valid || !o.valid {
		return InvalidMinutes
	}
	return MinutesOf(m.n - o.n)
}

func (m Minutes) String() string {
	return FormatDuration(m)
}

// TotalDuration sums end-start over every range of a day.
// Ranges ending before they start count negatively. A single unparsable range
// makes the total invalid.
func TotalDuration(ranges []TimeRange) Minutes {
	total := MinutesOf(0)
	for _, r := range ranges {
		total = total.Add(r.Duration())
	}
	return total
}

// FormatDuration renders minutes as "HH:MM".
// Hours are floored and minutes keep the sign of the total, so -5 renders as
// "-1:-5". Invalid input renders as "NaN:NaN".
func FormatDuration(m Minutes) string {
	n, ok := m.Int()
	if !ok {
		return "NaN:NaN"
	}
	return fmt.Sprintf("%02d:%02d", floorDiv(n, 60), n%60)
}

// Average returns the floored mean of durations.
// It is invalid for an empty slice or when any duration is invalid.
func Average(durations []Minutes) Minutes {
	if len(durations) == 0 {
		return InvalidMinutes
	}
	sum := MinutesOf(0)
	for _, d := range durations {
		sum = sum.Add(d)
	}
	n, ok := sum.Int()
	if !ok {
		return InvalidMinutes
	}
	return MinutesOf(floorDiv(n, len(durations)))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
