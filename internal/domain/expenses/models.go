package expenses

import "time"

type TravelExpense struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	Date         time.Time
	StartReading float64
	EndReading   float64
	Distance     float64
	Rate         float64
	Amount       float64
}

type GeneralExpense struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	Date         time.Time
	Description  string
	Amount       float64
}

// Line is one description/amount pair in a bulk general-expense submission.
type Line struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Summary struct {
	TravelTotal   float64 `json:"travel_total"`
	GeneralTotal  float64 `json:"general_total"`
	AdvancesTotal float64 `json:"advances_total"`
}
