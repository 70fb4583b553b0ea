package reports

import (
	"testing"
	"time"

	"hrportal/internal/domain/attendance"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func clock(hour, minute int) *attendance.TimeOfDay {
	t := attendance.NewTimeOfDay(hour, minute)
	return &t
}

func TestEmployeeTotalsGrandTotalEqualsSubtotalSum(t *testing.T) {
	rows := []ExpenseRow{
		{EmployeeName: "Asha", Date: day("2024-03-01"), Amount: 120},
		{EmployeeName: "Ravi", Date: day("2024-03-01"), Amount: 80},
		{EmployeeName: "Asha", Date: day("2024-03-02"), Amount: 50},
	}

	totals, grand := EmployeeTotals(rows)
	if grand != 250 {
		t.Fatalf("expected grand total 250, got %v", grand)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(totals))
	}
	if totals[0].EmployeeName != "Asha" || totals[0].Total != 170 {
		t.Fatalf("unexpected first subtotal: %+v", totals[0])
	}
	if totals[1].EmployeeName != "Ravi" || totals[1].Total != 80 {
		t.Fatalf("unexpected second subtotal: %+v", totals[1])
	}

	var sum float64
	for _, total := range totals {
		sum += total.Total
	}
	if sum != grand {
		t.Fatalf("subtotals sum to %v, grand total is %v", sum, grand)
	}
}

func TestEmployeeTotalsEmpty(t *testing.T) {
	totals, grand := EmployeeTotals(nil)
	if len(totals) != 0 || grand != 0 {
		t.Fatal("expected empty result for no rows")
	}
}

func TestGroupByDateOrdersAndTotals(t *testing.T) {
	rows := []ExpenseRow{
		{EmployeeName: "Ravi", Date: day("2024-03-02"), Amount: 30},
		{EmployeeName: "Asha", Date: day("2024-03-01"), Amount: 10},
		{EmployeeName: "Ravi", Date: day("2024-03-01"), Amount: 20},
	}

	groups := GroupByDate(rows)
	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	if groups[0].Date != "2024-03-01" || groups[0].Total != 30 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if len(groups[0].Rows) != 2 {
		t.Fatalf("expected 2 rows on first day, got %d", len(groups[0].Rows))
	}
	if groups[1].Date != "2024-03-02" || groups[1].Total != 30 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestSummarizeAttendance(t *testing.T) {
	records := []attendance.Record{
		{EmployeeName: "Asha", Shift1In: clock(9, 0)},
		{EmployeeName: "Asha", Shift1In: clock(10, 30)},
		{EmployeeName: "Ravi", Shift1In: nil},
	}

	stats := Summarize(records)
	if stats.TotalEmployees != 2 {
		t.Fatalf("expected 2 distinct employees, got %d", stats.TotalEmployees)
	}
	if stats.TotalRecords != 3 {
		t.Fatalf("expected 3 records, got %d", stats.TotalRecords)
	}
	if stats.Present != 2 {
		t.Fatalf("expected 2 present, got %d", stats.Present)
	}
	if stats.Absent != 1 {
		t.Fatalf("expected 1 absent, got %d", stats.Absent)
	}
	if stats.Late != 1 {
		t.Fatalf("expected 1 late, got %d", stats.Late)
	}
}
