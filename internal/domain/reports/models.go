package reports

import "time"

// Report types accepted by the PDF and preview endpoints. Anything else
// renders an empty "no data" page.
const (
	TypeAttendance = "attendance"
	TypeTravel     = "travel expenses"
	TypeGeneral    = "general expenses"
)

// ExpenseRow is one reportable expense line, already joined to the employee
// name.
type ExpenseRow struct {
	EmployeeName string
	Date         time.Time
	Description  string
	Amount       float64
}

type EmployeeTotal struct {
	EmployeeName string
	Total        float64
}

// DayGroup is one detail-table section: all rows for a date plus the day
// total.
type DayGroup struct {
	Date  string
	Rows  []ExpenseRow
	Total float64
}

type AttendanceStats struct {
	TotalEmployees int
	TotalRecords   int
	Present        int
	Absent         int
	Late           int
}

// Request identifies which report to build over which optional date range.
type Request struct {
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Action    string
}
