package advances

import "time"

type Advance struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	Date         time.Time
	Amount       float64
	Notes        string
}

// Filter narrows a listing to one date or one calendar month. Zero values
// mean no filtering.
type Filter struct {
	Date       *time.Time
	MonthStart *time.Time
	MonthEnd   *time.Time
}
