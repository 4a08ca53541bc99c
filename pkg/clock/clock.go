// Package clock parses wall-clock time-of-day strings into minutes since
// midnight. Schedule data arrives in two syntaxes, 24-hour "HH:MM" and
// 12-hour "h:mm AM/PM", and either field may be empty or garbage; parsing
// reports failure explicitly instead of guessing so callers can drop the
// offending shift.
package clock

import (
	"strconv"
	"strings"
)

// MinutesPerDay is the wraparound constant for overnight shifts.
const MinutesPerDay = 24 * 60

// Parse converts a time-of-day string into minutes since midnight, in
// [0, 1439]. It accepts "HH:MM" (24-hour) and "h:mm AM"/"h:mm PM"
// (case-insensitive meridiem). The second return value is false for
// anything else.
func Parse(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return parse24(fields[0])
	case 2:
		return parse12(fields[0], fields[1])
	default:
		return 0, false
	}
}

func parse24(s string) (int, bool) {
	hour, minute, ok := splitClock(s)
	if !ok || hour > 23 {
		return 0, false
	}
	return hour*60 + minute, true
}

func parse12(s, meridiem string) (int, bool) {
	hour, minute, ok := splitClock(s)
	if !ok || hour < 1 || hour > 12 {
		return 0, false
	}
	switch strings.ToUpper(meridiem) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, false
	}
	return hour*60 + minute, true
}

// splitClock splits "H:MM" into numeric hour and minute. Minutes are range
// checked here; the hour range depends on the syntax and is checked by the
// caller.
func splitClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// Span parses a shift's start and end times and resolves overnight
// wraparound: an end strictly before its start is read as next-day, so the
// returned end may be >= 1440. A shift with identical start and end is a
// valid zero-length span, not an overnight one. ok is false when either
// time fails to parse.
func Span(startTime, endTime string) (start, end int, ok bool) {
	start, ok = Parse(startTime)
	if !ok {
		return 0, 0, false
	}
	end, ok = Parse(endTime)
	if !ok {
		return 0, 0, false
	}
	if end < start {
		end += MinutesPerDay
	}
	return start, end, true
}

// Duration returns a shift's length in hours (fractional minutes included),
// overnight corrected. ok is false when either time fails to parse.
func Duration(startTime, endTime string) (float64, bool) {
	start, end, ok := Span(startTime, endTime)
	if !ok {
		return 0, false
	}
	return float64(end-start) / 60.0, true
}
