package analytics

import (
	"github.com/arnavshah/roster-analytics-go/pkg/calendar"
	"github.com/arnavshah/roster-analytics-go/pkg/clock"
	"github.com/arnavshah/roster-analytics-go/pkg/models"
)

// FindOverlaps reports which other shifts collide with subject. A collision
// means the same employee is covering the same role twice at once: only
// shifts sharing subject's employee, role and calendar date are candidates,
// and intervals compare half-open, so a shift ending 17:00 does not collide
// with one starting 17:00. Shifts whose date or times fail to parse never
// overlap anything; if subject itself fails to parse the result is simply
// empty.
func FindOverlaps(subject models.Shift, allShifts []models.Shift) models.OverlapResult {
	result := models.OverlapResult{OverlappingShifts: []models.Shift{}}

	date, ok := calendar.Parse(subject.Date)
	if !ok {
		return result
	}
	subStart, okStart := clock.Parse(subject.StartTime)
	subEnd, okEnd := clock.Parse(subject.EndTime)
	if !okStart || !okEnd {
		return result
	}

	for _, other := range allShifts {
		if other.ID == subject.ID {
			continue
		}
		if other.EmployeeName != subject.EmployeeName || other.Role != subject.Role {
			continue
		}
		otherDate, ok := calendar.Parse(other.Date)
		if !ok || !otherDate.Equal(date) {
			continue
		}
		otherStart, ok := clock.Parse(other.StartTime)
		if !ok {
			continue
		}
		otherEnd, ok := clock.Parse(other.EndTime)
		if !ok {
			continue
		}
		if subStart < otherEnd && otherStart < subEnd {
			result.OverlappingShifts = append(result.OverlappingShifts, other)
		}
	}

	result.HasOverlap = len(result.OverlappingShifts) > 0
	return result
}
