package clock

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  int
		valid bool
	}{
		{"24h morning", "09:00", 540, true},
		{"24h midnight", "00:00", 0, true},
		{"24h last minute", "23:59", 1439, true},
		{"24h afternoon", "17:30", 1050, true},
		{"12h morning", "9:00 AM", 540, true},
		{"12h afternoon", "5:30 PM", 1050, true},
		{"12h noon", "12:00 PM", 720, true},
		{"12h midnight", "12:00 AM", 0, true},
		{"12h lowercase meridiem", "9:15 pm", 1275, true},
		{"leading whitespace", " 08:00", 480, true},
		{"empty", "", 0, false},
		{"garbage", "invalid", 0, false},
		{"24h hour out of range", "24:00", 0, false},
		{"24h minute out of range", "12:60", 0, false},
		{"12h hour zero", "0:30 AM", 0, false},
		{"12h hour thirteen", "13:00 PM", 0, false},
		{"bad meridiem", "9:00 XM", 0, false},
		{"non-numeric hour", "aa:00", 0, false},
		{"non-numeric minute", "09:bb", 0, false},
		{"missing minutes", "09", 0, false},
		{"too many fields", "9:00 AM PST", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.in)
			if ok != tc.valid {
				t.Fatalf("Parse(%q) valid = %v, want %v", tc.in, ok, tc.valid)
			}
			if ok && got != tc.want {
				t.Errorf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
		valid bool
	}{
		{"regular day shift", "09:00", "17:00", 8.0, true},
		{"overnight shift", "23:00", "07:00", 8.0, true},
		{"zero duration", "09:00", "09:00", 0.0, true},
		{"fractional hours", "09:00", "09:45", 0.75, true},
		{"12h input", "9:00 AM", "5:00 PM", 8.0, true},
		{"mixed syntaxes", "9:00 PM", "02:30", 5.5, true},
		{"one minute before wrap", "00:00", "23:59", 23.983333333333334, true},
		{"invalid start", "bogus", "17:00", 0, false},
		{"invalid end", "09:00", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Duration(tc.start, tc.end)
			if ok != tc.valid {
				t.Fatalf("Duration(%q, %q) valid = %v, want %v", tc.start, tc.end, ok, tc.valid)
			}
			if ok && math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Duration(%q, %q) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestSpanWraparound(t *testing.T) {
	start, end, ok := Span("22:00", "06:00")
	if !ok {
		t.Fatal("Span unexpectedly invalid")
	}
	if start != 1320 || end != 1320+480 {
		t.Errorf("Span(22:00, 06:00) = (%d, %d), want (1320, 1800)", start, end)
	}

	// Identical start and end is zero length, not a 24h wrap.
	start, end, ok = Span("09:00", "09:00")
	if !ok || start != end {
		t.Errorf("Span(09:00, 09:00) = (%d, %d, %v), want equal endpoints", start, end, ok)
	}
}
