package insights

import (
	"fmt"
	"time"
)

// Thresholds for the trailing-30-day attrition heuristic.
const (
	AbsenceRiskThreshold = 3
	LateRiskThreshold    = 5

	// AnomalyFactor flags expenses this many times above the mean.
	AnomalyFactor = 4

	// ScanLimit caps the anomaly scan at the ten largest expenses.
	ScanLimit = 10
)

type ExpenseRecord struct {
	EmployeeName string
	Date         time.Time
	Amount       float64
}

type AttendanceTally struct {
	EmployeeName string
	Absences     int
	Late         int
}

// Anomalies describes the expenses whose amount stands out against the mean.
// Only the ScanLimit largest rows are considered; callers pass records ordered
// by amount descending. A zero mean means there is nothing to compare against.
func Anomalies(mean float64, records []ExpenseRecord) []string {
	if mean == 0 {
		return nil
	}
	if len(records) > ScanLimit {
		records = records[:ScanLimit]
	}
	var out []string
	for _, rec := range records {
		if rec.Amount > mean*AnomalyFactor {
			out = append(out, fmt.Sprintf("%s on %s amount %.2f", rec.EmployeeName, rec.Date.Format("2006-01-02"), rec.Amount))
		}
	}
	return out
}

// AttritionRisks names the employees whose recent absence or lateness counts
// cross the risk thresholds.
func AttritionRisks(tallies []AttendanceTally) []string {
	var out []string
	for _, tally := range tallies {
		if tally.Absences > AbsenceRiskThreshold || tally.Late > LateRiskThreshold {
			out = append(out, tally.EmployeeName)
		}
	}
	return out
}
