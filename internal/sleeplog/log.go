package sleeplog

import (
	"regexp"
	"strings"
)

var timeRangePattern = regexp.MustCompile(`(\d+:\d\d)-(\d+:\d\d)`)

// TimeRange is one "HH:MM-HH:MM" interval. Start and End keep the matched
// text and are parsed again by each consumer. Both are empty when the source
// text held no range.
type TimeRange struct {
	Start string
	End   string
}

// ParseTimeRange reads the first "H:MM-H:MM" occurrence in text.
func ParseTimeRange(text string) TimeRange {
	m := timeRangePattern.FindStringSubmatch(text)
	if m == nil {
		return TimeRange{}
	}
	return TimeRange{Start: m[1], End: m[2]}
}

// Valid reports whether both ends parse as times.
func (r TimeRange) Valid() bool {
	return ParseTimeOfDay(r.Start).Valid() && ParseTimeOfDay(r.End).Valid()
}

// Duration returns end minus start. No check is made that end follows start.
func (r TimeRange) Duration() Minutes {
	return ParseTimeOfDay(r.End).Minutes().Sub(ParseTimeOfDay(r.Start).Minutes())
}

func (r TimeRange) String() string {
	return r.Start + "-" + r.End
}

// Day is the list of ranges entered on one line of the log.
type Day struct {
	Line   int // zero-based line number in the source text
	Ranges []TimeRange
}

// TotalDuration returns the summed duration of the day's ranges.
func (d Day) TotalDuration() Minutes {
	return TotalDuration(d.Ranges)
}

// SplitLine splits a line on commas and parses each trimmed segment.
// Segments without a range become empty TimeRanges, preserving their position.
func SplitLine(line string) []TimeRange {
	parts := strings.Split(line, ",")
	ranges := make([]TimeRange, 0, len(parts))
	for _, p := range parts {
		ranges = append(ranges, ParseTimeRange(strings.TrimSpace(p)))
	}
	return ranges
}

// ParseLog turns raw text into days, one per non-blank line.
func ParseLog(text string) []Day {
	lines := strings.Split(text, "\n")
	days := make([]Day, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		days = append(days, Day{Line: i, Ranges: SplitLine(line)})
	}
	return days
}

// Ranges flattens the ranges of all days, in order.
func Ranges(days []Day) []TimeRange {
	var all []TimeRange
	for _, d := range days {
		all = append(all, d.Ranges...)
	}
	return all
}

// Durations returns the total duration of each day.
func Durations(days []Day) []Minutes {
	out := make([]Minutes, len(days))
	for i, d := range days {
		out[i] = d.TotalDuration()
	}
	return out
}
