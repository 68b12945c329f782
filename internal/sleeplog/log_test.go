package sleeplog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeRange
	}{
		{name: "plain", input: "08:00-13:00", want: TimeRange{Start: "08:00", End: "13:00"}},
		{name: "short hours", input: "1:30-7:05", want: TimeRange{Start: "1:30", End: "7:05"}},
		{name: "surrounding text", input: "nap 14:00-15:00 zz", want: TimeRange{Start: "14:00", End: "15:00"}},
		{name: "spaces around dash", input: "14:00 - 15:00", want: TimeRange{}},
		{name: "empty", input: "", want: TimeRange{}},
		{name: "single time", input: "14:00", want: TimeRange{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimeRange(tt.input)
			if got != tt.want {
				t.Errorf("ParseTimeRange(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []TimeRange
	}{
		{
			name: "two ranges",
			line: "08:00-13:00, 14:00-15:00",
			want: []TimeRange{{Start: "08:00", End: "13:00"}, {Start: "14:00", End: "15:00"}},
		},
		{
			name: "single range",
			line: "  00:30-07:15  ",
			want: []TimeRange{{Start: "00:30", End: "07:15"}},
		},
		{
			name: "trailing comma keeps empty range",
			line: "01:00-02:00,",
			want: []TimeRange{{Start: "01:00", End: "02:00"}, {}},
		},
		{
			name: "malformed segment",
			line: "bad, 03:00-04:00",
			want: []TimeRange{{}, {Start: "03:00", End: "04:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLine(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseLog(t *testing.T) {
	text := "00:00-07:00, 13:00-14:00\n\n   \n23:00-23:59\r\n01:00-08:00"
	want := []Day{
		{Line: 0, Ranges: []TimeRange{{Start: "00:00", End: "07:00"}, {Start: "13:00", End: "14:00"}}},
		{Line: 3, Ranges: []TimeRange{{Start: "23:00", End: "23:59"}}},
		{Line: 4, Ranges: []TimeRange{{Start: "01:00", End: "08:00"}}},
	}

	got := ParseLog(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLog mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLog_Empty(t *testing.T) {
	if got := ParseLog(""); len(got) != 0 {
		t.Errorf("ParseLog(\"\") returned %d days, want 0", len(got))
	}
	if got := ParseLog("\n \n\t"); len(got) != 0 {
		t.Errorf("ParseLog(blank lines) returned %d days, want 0", len(got))
	}
}

func TestRanges(t *testing.T) {
	days := ParseLog("01:00-02:00, 03:00-04:00\n05:00-06:00")
	want := []TimeRange{
		{Start: "01:00", End: "02:00"},
		{Start: "03:00", End: "04:00"},
		{Start: "05:00", End: "06:00"},
	}
	if diff := cmp.Diff(want, Ranges(days)); diff != "" {
		t.Errorf("Ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestTimeRangeValid(t *testing.T) {
	if !(TimeRange{Start: "01:00", End: "02:00"}).Valid() {
		t.Error("expected range to be valid")
	}
	if (TimeRange{}).Valid() {
		t.Error("expected empty range to be invalid")
	}
}
