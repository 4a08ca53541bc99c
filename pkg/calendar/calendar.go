// Package calendar holds the canonical calendar-date representation used by
// the analytics and timeline engines. A Date is a plain year/month/day with
// no time-of-day and no timezone, so schedule dates entered on one machine
// never shift when read on another.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timeframe selects the aggregation window anchored at a reference date.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)

// Date is a calendar date. The zero value is invalid.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// Today returns the current wall-clock date.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// Parse converts a canonical "YYYY-MM-DD" string into a Date. It splits the
// string numerically instead of delegating to time.Parse so the result can
// never be reinterpreted in a different timezone. The second return value is
// false for anything malformed or calendar-impossible.
func Parse(s string) (Date, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, false
	}
	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// String formats the date in canonical zero-padded "YYYY-MM-DD" form using
// the date's own components, never a timezone-converted timestamp.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// Before reports whether d is an earlier calendar day than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// InRange reports whether start <= d <= end.
func (d Date) InRange(start, end Date) bool {
	return !d.Before(start) && !end.Before(d)
}

// AddDays returns the date n days after d (n may be negative). Month and
// year rollover is delegated to the time package.
func (d Date) AddDays(n int) Date {
	t := d.asTime().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Weekday returns the day of week, Sunday = 0.
func (d Date) Weekday() int {
	return int(d.asTime().Weekday())
}

// Range computes the inclusive [start, end] window for a timeframe anchored
// at ref. Weeks run Sunday through Saturday; months run from day 1 to the
// last day of ref's month. An unrecognized timeframe is a programmer error
// and panics.
func Range(ref Date, tf Timeframe) (Date, Date) {
	switch tf {
	case TimeframeWeek:
		start := ref.AddDays(-ref.Weekday())
		return start, start.AddDays(6)
	case TimeframeMonth:
		start := Date{Year: ref.Year, Month: ref.Month, Day: 1}
		end := Date{Year: ref.Year, Month: ref.Month, Day: daysInMonth(ref.Year, ref.Month)}
		return start, end
	default:
		panic("calendar: unknown timeframe " + strconv.Quote(string(tf)))
	}
}

// daysInMonth uses the day-zero-of-next-month trick to get the month length.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) asTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}
