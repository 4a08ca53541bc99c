// Package timeline lays out the shifts of a single calendar date on a shared
// hour axis: a common hour range, a horizontal offset and width per shift,
// and, when grouping by role, a lane per shift so two simultaneous shifts of
// the same role never draw on top of each other.
package timeline

import (
	"sort"
	"strconv"

	"github.com/arnavshah/roster-analytics-go/pkg/calendar"
	"github.com/arnavshah/roster-analytics-go/pkg/clock"
	"github.com/arnavshah/roster-analytics-go/pkg/models"
)

// GroupBy selects the lane partitioning for the timeline.
type GroupBy string

const (
	GroupByEmployee GroupBy = "employee"
	GroupByRole     GroupBy = "role"
)

// Rendering window defaults: 7 AM to 11 PM, never narrower than 16 hours.
const (
	defaultMinHour = 7
	defaultMaxHour = 23
	minHourSpan    = 16
)

// Entry is one laid-out shift. Fractions are relative to the layout's hour
// range; VerticalSlot is only meaningful when grouping by role.
type Entry struct {
	models.Shift
	VerticalSlot  int     `json:"vertical_slot"`
	StartFraction float64 `json:"start_fraction"`
	WidthFraction float64 `json:"width_fraction"`
}

// Layout is the computed geometry for one date and one grouping choice.
type Layout struct {
	MinHour int                `json:"min_hour"`
	MaxHour int                `json:"max_hour"`
	Entries map[string][]Entry `json:"entries"`
}

// placed pairs a shift with its overnight-corrected minute interval.
type placed struct {
	shift      models.Shift
	start, end int
}

// Build computes the timeline layout for the shifts falling on date. Shifts
// on other dates or with unparseable dates/times are simply absent from the
// result. An unrecognized groupBy is a programmer error and panics.
func Build(shifts []models.Shift, date calendar.Date, groupBy GroupBy) Layout {
	if groupBy != GroupByEmployee && groupBy != GroupByRole {
		panic("timeline: unknown group-by " + strconv.Quote(string(groupBy)))
	}

	var day []placed
	for _, sh := range shifts {
		d, ok := calendar.Parse(sh.Date)
		if !ok || !d.Equal(date) {
			continue
		}
		start, end, ok := clock.Span(sh.StartTime, sh.EndTime)
		if !ok {
			continue
		}
		day = append(day, placed{shift: sh, start: start, end: end})
	}

	minHour, maxHour := hourRange(day)
	span := float64(maxHour - minHour + 1)

	groups := make(map[string][]placed)
	for _, p := range day {
		key := p.shift.EmployeeName
		if groupBy == GroupByRole {
			key = p.shift.Role
		}
		groups[key] = append(groups[key], p)
	}

	entries := make(map[string][]Entry, len(groups))
	for key, group := range groups {
		// Earliest start first; ties keep input order so the greedy slot
		// assignment below is deterministic.
		sort.SliceStable(group, func(i, j int) bool { return group[i].start < group[j].start })

		laid := make([]Entry, 0, len(group))
		for i, p := range group {
			slot := 0
			if groupBy == GroupByRole {
				slot = freeSlot(group[:i], laid, p)
			}
			laid = append(laid, Entry{
				Shift:         p.shift,
				VerticalSlot:  slot,
				StartFraction: (float64(p.start)/60 - float64(minHour)) / span,
				WidthFraction: float64(p.end-p.start) / 60 / span,
			})
		}
		entries[key] = laid
	}

	return Layout{MinHour: minHour, MaxHour: maxHour, Entries: entries}
}

// freeSlot returns the smallest lane not taken by an already-placed shift in
// the same group whose interval overlaps p's (half-open comparison).
func freeSlot(previous []placed, laid []Entry, p placed) int {
	used := make(map[int]bool)
	for i, q := range previous {
		if p.start < q.end && q.start < p.end {
			used[laid[i].VerticalSlot] = true
		}
	}
	slot := 0
	for used[slot] {
		slot++
	}
	return slot
}

// hourRange widens the default 7-23 window to cover every shift, then
// enforces the 16-hour minimum span. End hours round up so a shift ending
// mid-hour stays inside the window; an overnight end lands past hour 24.
func hourRange(day []placed) (int, int) {
	minHour, maxHour := defaultMinHour, defaultMaxHour
	for _, p := range day {
		if h := p.start / 60; h < minHour {
			minHour = h
		}
		if h := (p.end + 59) / 60; h > maxHour {
			maxHour = h
		}
	}
	if maxHour-minHour < minHourSpan {
		maxHour = minHour + minHourSpan
	}
	return minHour, maxHour
}
