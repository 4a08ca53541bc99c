package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arnavshah/roster-analytics-go/pkg/analytics"
	"github.com/arnavshah/roster-analytics-go/pkg/calendar"
	"github.com/arnavshah/roster-analytics-go/pkg/database"
	"github.com/arnavshah/roster-analytics-go/pkg/models"
	"github.com/arnavshah/roster-analytics-go/pkg/timeline"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// resolveTimeframe validates the timeframe string from a request. The
// engines panic on unknown enum values, so handlers reject them up front.
func resolveTimeframe(s string) (calendar.Timeframe, bool) {
	switch calendar.Timeframe(s) {
	case calendar.TimeframeWeek, calendar.TimeframeMonth:
		return calendar.Timeframe(s), true
	default:
		return "", false
	}
}

// resolveReference parses the reference date, defaulting to today when the
// field is omitted.
func resolveReference(s string) (calendar.Date, bool) {
	if s == "" {
		return calendar.Today(), true
	}
	return calendar.Parse(s)
}

func resolveSort(by, order string) (analytics.SortField, bool, bool) {
	var field analytics.SortField
	switch analytics.SortField(by) {
	case analytics.SortByName, analytics.SortByTotalHours, analytics.SortByShiftCount:
		field = analytics.SortField(by)
	default:
		if by != "" {
			return "", false, false
		}
		field = analytics.SortByName
	}
	switch order {
	case "", "asc":
		return field, false, true
	case "desc":
		return field, true, true
	default:
		return "", false, false
	}
}

// Analytics handles the JSON-based aggregation request
func (h *Handler) Analytics(c *gin.Context) {
	var input models.AnalyticsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tf, ok := resolveTimeframe(input.Timeframe)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeframe must be 'week' or 'month'"})
		return
	}
	ref, ok := resolveReference(input.ReferenceDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference_date must be YYYY-MM-DD"})
		return
	}
	sortBy, descending, ok := resolveSort(input.SortBy, input.SortOrder)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort_by must be one of name, total_hours, shift_count and sort_order one of asc, desc"})
		return
	}

	aggs := analytics.Aggregate(input.Shifts, ref, tf)
	analytics.SortAggregates(aggs, sortBy, descending)

	overtimeCount := 0
	for _, a := range aggs {
		if a.IsOvertime {
			overtimeCount++
		}
	}

	h.RecordUsage(c, len(input.Shifts), len(aggs))

	start, end := calendar.Range(ref, tf)
	c.JSON(http.StatusOK, models.AnalyticsResponse{
		Timeframe:     string(tf),
		StartDate:     start.String(),
		EndDate:       end.String(),
		Aggregates:    aggs,
		OvertimeCount: overtimeCount,
	})
}

// Overlaps handles conflict detection requests. With a subject_id it checks
// one shift; otherwise it reports every shift's overlaps keyed by id.
func (h *Handler) Overlaps(c *gin.Context) {
	var input models.OverlapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(input.Shifts), 0)

	if input.SubjectID != "" {
		for _, sh := range input.Shifts {
			if sh.ID == input.SubjectID {
				c.JSON(http.StatusOK, analytics.FindOverlaps(sh, input.Shifts))
				return
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject_id not found in shifts"})
		return
	}

	results := make(map[string]models.OverlapResult, len(input.Shifts))
	for _, sh := range input.Shifts {
		results[sh.ID] = analytics.FindOverlaps(sh, input.Shifts)
	}
	c.JSON(http.StatusOK, gin.H{"overlaps": results})
}

// Timeline handles one-day layout requests
func (h *Handler) Timeline(c *gin.Context) {
	var input models.TimelineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, ok := calendar.Parse(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	groupBy := timeline.GroupBy(input.GroupBy)
	if groupBy != timeline.GroupByEmployee && groupBy != timeline.GroupByRole {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_by must be 'employee' or 'role'"})
		return
	}

	layout := timeline.Build(input.Shifts, date, groupBy)

	h.RecordUsage(c, len(input.Shifts), len(layout.Entries))

	c.JSON(http.StatusOK, gin.H{
		"hour_range": []int{layout.MinHour, layout.MaxHour},
		"entries":    layout.Entries,
	})
}

// AnalyticsCSV accepts a CSV of shifts and responds with an aggregate CSV
func (h *Handler) AnalyticsCSV(c *gin.Context) {
	shiftsFile, _ := c.FormFile("shifts_file")
	if shiftsFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shifts_file is required"})
		return
	}

	tf, ok := resolveTimeframe(c.PostForm("timeframe"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeframe must be 'week' or 'month'"})
		return
	}
	ref, ok := resolveReference(c.PostForm("reference_date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference_date must be YYYY-MM-DD"})
		return
	}

	f, err := shiftsFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open shifts file"})
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read shifts header"})
		return
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[name] = i
	}

	field := func(record []string, name string) string {
		if i, ok := cols[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	var shifts []models.Shift
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		shifts = append(shifts, models.Shift{
			ID:           field(record, "id"),
			EmployeeName: field(record, "employee_name"),
			Role:         field(record, "role"),
			Date:         field(record, "date"),
			StartTime:    field(record, "start_time"),
			EndTime:      field(record, "end_time"),
			Status:       field(record, "status"),
		})
	}

	aggs := analytics.Aggregate(shifts, ref, tf)

	h.RecordUsage(c, len(shifts), len(aggs))

	var outCSV strings.Builder
	writer := csv.NewWriter(&outCSV)
	writer.Write([]string{"name", "total_hours", "shift_count", "is_overtime", "shift_ids"})
	for _, a := range aggs {
		writer.Write([]string{
			a.Name,
			fmt.Sprintf("%.2f", a.TotalHours),
			fmt.Sprintf("%d", a.ShiftCount),
			fmt.Sprintf("%t", a.IsOvertime),
			strings.Join(a.ShiftIDs, "|"),
		})
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{"csv": outCSV.String()})
}

// RecordUsage records API usage in the database using an efficient upsert
func (h *Handler) RecordUsage(c *gin.Context, shiftCount, employeeCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format("2006-01-02")

	// Use OnConflict for a single-query upsert (supported by both Postgres and SQLite)
	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":   gorm.Expr("request_count + ?", 1),
			"total_shifts":    gorm.Expr("total_shifts + ?", shiftCount),
			"total_employees": gorm.Expr("total_employees + ?", employeeCount),
		}),
	}).Create(&database.APIUsage{
		KeyID:          apiKey.ID,
		Date:           today,
		RequestCount:   1,
		TotalShifts:    shiftCount,
		TotalEmployees: employeeCount,
	})
}
