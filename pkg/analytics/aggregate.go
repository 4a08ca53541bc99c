// Package analytics computes per-employee hour aggregates and scheduling
// conflicts over a snapshot of shifts. Every function is pure: it reads the
// shift list it is handed and returns fresh results, so concurrent callers
// never contend.
package analytics

import (
	"sort"
	"strconv"

	"github.com/arnavshah/roster-analytics-go/pkg/calendar"
	"github.com/arnavshah/roster-analytics-go/pkg/clock"
	"github.com/arnavshah/roster-analytics-go/pkg/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Overtime thresholds in hours. Exceeding the threshold strictly flags the
// aggregate; hitting it exactly does not.
const (
	WeeklyOvertimeHours  = 40.0
	MonthlyOvertimeHours = 160.0
)

// SortField selects the column an aggregate listing is ordered by.
type SortField string

const (
	SortByName       SortField = "name"
	SortByTotalHours SortField = "total_hours"
	SortByShiftCount SortField = "shift_count"
)

// Aggregate folds the shifts falling inside the timeframe anchored at ref
// into one row per employee. Shifts with an invalid date, a date outside the
// window, or unparseable times contribute nothing and raise no error. The
// result is ordered by name so equal shift sets always aggregate to equal
// output regardless of input order.
func Aggregate(shifts []models.Shift, ref calendar.Date, tf calendar.Timeframe) []models.EmployeeAggregate {
	start, end := calendar.Range(ref, tf)
	threshold := OvertimeThreshold(tf)

	byName := make(map[string]*models.EmployeeAggregate)
	for i := range shifts {
		sh := &shifts[i]
		date, ok := calendar.Parse(sh.Date)
		if !ok || !date.InRange(start, end) {
			continue
		}
		hours, ok := clock.Duration(sh.StartTime, sh.EndTime)
		if !ok {
			continue
		}

		agg := byName[sh.EmployeeName]
		if agg == nil {
			agg = &models.EmployeeAggregate{
				Name:        sh.EmployeeName,
				HoursByRole: make(map[string]float64),
			}
			byName[sh.EmployeeName] = agg
		}
		agg.TotalHours += hours
		agg.ShiftCount++
		agg.HoursByRole[sh.Role] += hours
		agg.ShiftIDs = append(agg.ShiftIDs, sh.ID)
	}

	out := make([]models.EmployeeAggregate, 0, len(byName))
	for _, agg := range byName {
		agg.IsOvertime = agg.TotalHours > threshold
		out = append(out, *agg)
	}
	SortAggregates(out, SortByName, false)
	return out
}

// OvertimeThreshold returns the hour count above which a timeframe's
// aggregate is flagged. An unrecognized timeframe is a programmer error and
// panics.
func OvertimeThreshold(tf calendar.Timeframe) float64 {
	switch tf {
	case calendar.TimeframeWeek:
		return WeeklyOvertimeHours
	case calendar.TimeframeMonth:
		return MonthlyOvertimeHours
	default:
		panic("analytics: unknown timeframe " + strconv.Quote(string(tf)))
	}
}

// SortAggregates orders rows in place. Names compare with a locale-aware
// collator; the numeric fields compare by plain difference. An unrecognized
// field panics.
func SortAggregates(aggs []models.EmployeeAggregate, field SortField, descending bool) {
	var less func(i, j int) bool
	switch field {
	case SortByName:
		c := collate.New(language.English)
		less = func(i, j int) bool { return c.CompareString(aggs[i].Name, aggs[j].Name) < 0 }
	case SortByTotalHours:
		less = func(i, j int) bool { return aggs[i].TotalHours-aggs[j].TotalHours < 0 }
	case SortByShiftCount:
		less = func(i, j int) bool { return aggs[i].ShiftCount-aggs[j].ShiftCount < 0 }
	default:
		panic("analytics: unknown sort field " + strconv.Quote(string(field)))
	}
	if descending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.Slice(aggs, less)
}
