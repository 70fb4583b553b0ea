package attendancehandler

import (
	"testing"

	"hrportal/internal/domain/attendance"
	"hrportal/internal/domain/roster"
)

func clock(hour, minute int) *attendance.TimeOfDay {
	t := attendance.NewTimeOfDay(hour, minute)
	return &t
}

func TestTodayViewMarksMissingEmployeesAbsent(t *testing.T) {
	employees := []roster.Employee{
		{ID: 1, Name: "Asha"},
		{ID: 2, Name: "Ravi"},
	}
	records := []attendance.Record{
		{EmployeeID: 1, EmployeeName: "Asha", Shift1In: clock(9, 15), Shift1Out: clock(17, 0)},
	}

	rows, absent := todayView(employees, records)

	if len(rows) != 2 {
		t.Fatalf("expected a row per employee, got %d", len(rows))
	}
	if rows[0]["status"] != attendance.StatusPresent || rows[0]["check_in"] != "09:15 AM" {
		t.Fatalf("unexpected checked-in row: %v", rows[0])
	}
	if rows[1]["status"] != attendance.StatusAbsent || rows[1]["check_in"] != "-" {
		t.Fatalf("expected Ravi absent with dash placeholders, got %v", rows[1])
	}
	if len(absent) != 1 || absent[0]["name"] != "Ravi" {
		t.Fatalf("expected only Ravi in absent list, got %v", absent)
	}
}

func TestTodayViewRecordWithoutCheckInCountsAbsent(t *testing.T) {
	employees := []roster.Employee{{ID: 1, Name: "Asha"}}
	records := []attendance.Record{
		{EmployeeID: 1, EmployeeName: "Asha", Shift1In: nil, Shift1Out: clock(17, 0)},
	}

	rows, absent := todayView(employees, records)

	if rows[0]["status"] != attendance.StatusAbsent {
		t.Fatalf("expected Absent for a row with no check-in, got %v", rows[0])
	}
	if len(absent) != 1 {
		t.Fatalf("expected Asha in absent list, got %v", absent)
	}
}

func TestTodayViewLateCheckIn(t *testing.T) {
	employees := []roster.Employee{{ID: 1, Name: "Asha"}}
	records := []attendance.Record{
		{EmployeeID: 1, EmployeeName: "Asha", Shift1In: clock(10, 30)},
	}

	rows, absent := todayView(employees, records)

	if rows[0]["status"] != attendance.StatusLate {
		t.Fatalf("expected Late for 10:30, got %v", rows[0])
	}
	if rows[0]["check_out"] != "-" {
		t.Fatalf("expected dash for missing check-out, got %v", rows[0])
	}
	if len(absent) != 0 {
		t.Fatalf("expected empty absent list, got %v", absent)
	}
}
