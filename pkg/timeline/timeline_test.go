package timeline

import (
	"math"
	"testing"

	"github.com/arnavshah/roster-analytics-go/pkg/calendar"
	"github.com/arnavshah/roster-analytics-go/pkg/models"
)

var day = calendar.Date{Year: 2026, Month: 8, Day: 17}

func serverShift(id, name, start, end string) models.Shift {
	return models.Shift{ID: id, EmployeeName: name, Role: "Server", Date: "2026-08-17", StartTime: start, EndTime: end}
}

func TestBuildStacksOverlappingRoleShifts(t *testing.T) {
	shifts := []models.Shift{
		serverShift("s1", "Alice", "09:00", "17:00"),
		serverShift("s2", "Bob", "10:00", "18:00"),
		serverShift("s3", "Cara", "11:00", "19:00"),
	}

	layout := Build(shifts, day, GroupByRole)
	entries := layout.Entries["Server"]
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries in the Server group, got %d", len(entries))
	}

	// All three mutually overlap, so the greedy assignment walks 0, 1, 2 in
	// start order.
	for i, e := range entries {
		if e.VerticalSlot != i {
			t.Errorf("entry %s: slot %d, want %d", e.ID, e.VerticalSlot, i)
		}
	}
}

func TestBuildGroupByEmployeeUsesSlotZero(t *testing.T) {
	shifts := []models.Shift{
		serverShift("s1", "Alice", "09:00", "17:00"),
		serverShift("s2", "Bob", "10:00", "18:00"),
		serverShift("s3", "Cara", "11:00", "19:00"),
	}

	layout := Build(shifts, day, GroupByEmployee)
	if len(layout.Entries) != 3 {
		t.Fatalf("expected 3 employee groups, got %d", len(layout.Entries))
	}
	for key, entries := range layout.Entries {
		for _, e := range entries {
			if e.VerticalSlot != 0 {
				t.Errorf("group %s entry %s: slot %d, want 0", key, e.ID, e.VerticalSlot)
			}
		}
	}
}

func TestBuildReusesFreedSlot(t *testing.T) {
	// s2 overlaps s1; s3 starts after s1 ends so it can drop back to slot 0.
	shifts := []models.Shift{
		serverShift("s1", "Alice", "09:00", "12:00"),
		serverShift("s2", "Bob", "10:00", "18:00"),
		serverShift("s3", "Cara", "13:00", "16:00"),
	}

	entries := Build(shifts, day, GroupByRole).Entries["Server"]
	slots := map[string]int{}
	for _, e := range entries {
		slots[e.ID] = e.VerticalSlot
	}
	if slots["s1"] != 0 || slots["s2"] != 1 || slots["s3"] != 0 {
		t.Errorf("expected slots s1=0 s2=1 s3=0, got %v", slots)
	}
}

func TestBuildDefaultHourRange(t *testing.T) {
	shifts := []models.Shift{serverShift("s1", "Alice", "09:00", "17:00")}

	layout := Build(shifts, day, GroupByRole)
	if layout.MinHour != 7 || layout.MaxHour != 23 {
		t.Errorf("expected default 7-23 range, got %d-%d", layout.MinHour, layout.MaxHour)
	}
}

func TestBuildExtendsHourRange(t *testing.T) {
	shifts := []models.Shift{
		serverShift("early", "Alice", "05:00", "09:00"),
		serverShift("night", "Bob", "23:00", "07:00"), // wraps to hour 31
	}

	layout := Build(shifts, day, GroupByRole)
	if layout.MinHour != 5 {
		t.Errorf("expected min hour 5, got %d", layout.MinHour)
	}
	if layout.MaxHour != 31 {
		t.Errorf("expected max hour 31 for an overnight end, got %d", layout.MaxHour)
	}
}

func TestBuildEnforcesMinimumSpan(t *testing.T) {
	// A lone early shift drags min down to 2; max stays at the default and
	// the window keeps its 16-hour floor.
	shifts := []models.Shift{serverShift("dawn", "Alice", "02:00", "06:00")}

	layout := Build(shifts, day, GroupByRole)
	if layout.MinHour != 2 || layout.MaxHour != 23 {
		t.Errorf("expected 2-23, got %d-%d", layout.MinHour, layout.MaxHour)
	}

	if got := layout.MaxHour - layout.MinHour; got < 16 {
		t.Errorf("window narrower than 16 hours: %d", got)
	}
}

func TestBuildFractions(t *testing.T) {
	shifts := []models.Shift{serverShift("s1", "Alice", "09:30", "17:30")}

	layout := Build(shifts, day, GroupByRole)
	e := layout.Entries["Server"][0]

	span := float64(layout.MaxHour - layout.MinHour + 1) // 17
	wantStart := (9.5 - 7.0) / span
	wantWidth := 8.0 / span

	if math.Abs(e.StartFraction-wantStart) > 1e-9 {
		t.Errorf("start fraction %v, want %v", e.StartFraction, wantStart)
	}
	if math.Abs(e.WidthFraction-wantWidth) > 1e-9 {
		t.Errorf("width fraction %v, want %v", e.WidthFraction, wantWidth)
	}
}

func TestBuildFiltersOtherDatesAndMalformed(t *testing.T) {
	shifts := []models.Shift{
		serverShift("keep", "Alice", "09:00", "17:00"),
		{ID: "other-day", EmployeeName: "Bob", Role: "Server", Date: "2026-08-18", StartTime: "09:00", EndTime: "17:00"},
		{ID: "bad-date", EmployeeName: "Cara", Role: "Server", Date: "nope", StartTime: "09:00", EndTime: "17:00"},
		{ID: "bad-time", EmployeeName: "Dave", Role: "Server", Date: "2026-08-17", StartTime: "", EndTime: "17:00"},
	}

	layout := Build(shifts, day, GroupByRole)
	entries := layout.Entries["Server"]
	if len(entries) != 1 || entries[0].ID != "keep" {
		t.Errorf("expected only the parseable same-day shift, got %+v", entries)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	layout := Build(nil, day, GroupByEmployee)
	if layout.MinHour != 7 || layout.MaxHour != 23 {
		t.Errorf("empty input should keep the default range, got %d-%d", layout.MinHour, layout.MaxHour)
	}
	if len(layout.Entries) != 0 {
		t.Errorf("empty input should produce no groups, got %v", layout.Entries)
	}
}

func TestBuildUnknownGroupByPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown group-by")
		}
	}()
	Build(nil, day, GroupBy("location"))
}
