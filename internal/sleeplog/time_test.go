package sleeplog

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantValid  bool
	}{
		{name: "midnight", input: "00:00", wantHour: 0, wantMinute: 0, wantValid: true},
		{name: "single digit hour", input: "8:30", wantHour: 8, wantMinute: 30, wantValid: true},
		{name: "leading zero", input: "08:05", wantHour: 8, wantMinute: 5, wantValid: true},
		{name: "past midnight hour", input: "25:10", wantHour: 25, wantMinute: 10, wantValid: true},
		{name: "embedded in text", input: "woke at 7:45 today", wantHour: 7, wantMinute: 45, wantValid: true},
		{name: "first match wins", input: "1:00-2:00", wantHour: 1, wantMinute: 0, wantValid: true},
		{name: "three minute digits", input: "12:345", wantHour: 12, wantMinute: 34, wantValid: true},
		{name: "single minute digit", input: "12:3", wantValid: false},
		{name: "empty", input: "", wantValid: false},
		{name: "garbage", input: "noon", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimeOfDay(tt.input)
			if got.Valid() != tt.wantValid {
				t.Fatalf("ParseTimeOfDay(%q).Valid() = %v, want %v", tt.input, got.Valid(), tt.wantValid)
			}
			if !tt.wantValid {
				return
			}
			if got.Hour != tt.wantHour || got.Minute != tt.wantMinute {
				t.Errorf("ParseTimeOfDay(%q) = %d:%d, want %d:%d", tt.input, got.Hour, got.Minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestTimeOfDayMinutes_Invalid(t *testing.T) {
	if ParseTimeOfDay("").Minutes().Valid() {
		t.Error("minutes of an invalid time should be invalid")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "noon", input: "12:00", want: 50},
		{name: "6am", input: "06:00", want: 25},
		{name: "18:00", input: "18:00", want: 75},
		{name: "3am", input: "03:00", want: 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Percent(tt.input)
			if !ok {
				t.Fatalf("Percent(%q) reported invalid", tt.input)
			}
			if got != tt.want {
				t.Errorf("Percent(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, ok := Percent(""); ok {
		t.Error("Percent(\"\") should be invalid")
	}
}

func TestSegmentIndex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "truncates within bucket", input: "00:14", want: 0},
		{name: "second bucket", input: "00:15", want: 1},
		{name: "noon", input: "12:00", want: 48},
		{name: "last bucket", input: "23:45", want: 95},
		{name: "last minute", input: "23:59", want: 95},
		{name: "past end of day", input: "24:00", want: 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SegmentIndex(tt.input)
			if !ok {
				t.Fatalf("SegmentIndex(%q) reported invalid", tt.input)
			}
			if got != tt.want {
				t.Errorf("SegmentIndex(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}

	if _, ok := SegmentIndex("x"); ok {
		t.Error("SegmentIndex(\"x\") should be invalid")
	}
}
