package models

// Shift is a single scheduled shift as supplied by the caller's data layer.
// The engine treats it as read-only; shifts with an empty date or
// unparseable times are skipped by every computation.
type Shift struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	Role         string `json:"role"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status,omitempty"`
}

// EmployeeAggregate is one employee's totals over a timeframe
type EmployeeAggregate struct {
	Name        string             `json:"name"`
	TotalHours  float64            `json:"total_hours"`
	ShiftCount  int                `json:"shift_count"`
	HoursByRole map[string]float64 `json:"hours_by_role"`
	IsOvertime  bool               `json:"is_overtime"`
	ShiftIDs    []string           `json:"shift_ids"`
}

// OverlapResult reports whether a shift collides with another shift for the
// same employee and role on the same date
type OverlapResult struct {
	HasOverlap        bool    `json:"has_overlap"`
	OverlappingShifts []Shift `json:"overlapping_shifts"`
}

// AnalyticsInput is the data structure for the analytics endpoint
type AnalyticsInput struct {
	Shifts        []Shift `json:"shifts"`
	ReferenceDate string  `json:"reference_date"`
	Timeframe     string  `json:"timeframe"`
	SortBy        string  `json:"sort_by,omitempty"`
	SortOrder     string  `json:"sort_order,omitempty"`
}

// AnalyticsResponse is the data structure for the analytics result
type AnalyticsResponse struct {
	Timeframe     string              `json:"timeframe"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	Aggregates    []EmployeeAggregate `json:"aggregates"`
	OvertimeCount int                 `json:"overtime_count"`
}

// OverlapInput is the data structure for the overlap endpoint. When
// SubjectID is set only that shift is checked; otherwise every shift is.
type OverlapInput struct {
	Shifts    []Shift `json:"shifts"`
	SubjectID string  `json:"subject_id,omitempty"`
}

// TimelineInput is the data structure for the timeline endpoint
type TimelineInput struct {
	Shifts  []Shift `json:"shifts"`
	Date    string  `json:"date"`
	GroupBy string  `json:"group_by"`
}
