package dashboard

import (
	"testing"

	"hrportal/internal/domain/attendance"
)

func clock(hour, minute int) *attendance.TimeOfDay {
	t := attendance.NewTimeOfDay(hour, minute)
	return &t
}

func TestSummarizeCounts(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: 1, Shift1In: clock(9, 0)},
		{EmployeeID: 2, Shift1In: clock(10, 30)},
		{EmployeeID: 3, Shift1In: nil},
	}

	counts := Summarize(5, records)
	if counts.PresentCount != 2 {
		t.Fatalf("expected 2 present, got %d", counts.PresentCount)
	}
	if counts.LateCount != 1 {
		t.Fatalf("expected 1 late, got %d", counts.LateCount)
	}
	if counts.AbsentCount != 3 {
		t.Fatalf("expected 3 absent, got %d", counts.AbsentCount)
	}
}

func TestSummarizeCountsDistinctEmployees(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: 1, Shift1In: clock(10, 15)},
		{EmployeeID: 1, Shift1In: clock(10, 45)},
	}

	counts := Summarize(2, records)
	if counts.PresentCount != 1 {
		t.Fatalf("expected duplicate rows to count once, got %d", counts.PresentCount)
	}
	if counts.LateCount != 1 {
		t.Fatalf("expected 1 late, got %d", counts.LateCount)
	}
}

func TestSummarizeAbsentNeverNegative(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: 1, Shift1In: clock(8, 0)},
		{EmployeeID: 2, Shift1In: clock(8, 5)},
	}

	counts := Summarize(1, records)
	if counts.AbsentCount != 0 {
		t.Fatalf("absent count must clamp at zero, got %d", counts.AbsentCount)
	}
}

func TestSummarizeEmptyDay(t *testing.T) {
	counts := Summarize(4, nil)
	if counts.PresentCount != 0 || counts.LateCount != 0 {
		t.Fatal("expected zero present and late with no records")
	}
	if counts.AbsentCount != 4 {
		t.Fatalf("expected whole roster absent, got %d", counts.AbsentCount)
	}
}
