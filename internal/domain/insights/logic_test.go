package insights

import (
	"testing"
	"time"
)

func TestAnomaliesFlagsOutliers(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []ExpenseRecord{
		{EmployeeName: "Asha", Date: date, Amount: 500},
		{EmployeeName: "Ravi", Date: date, Amount: 90},
	}

	anomalies := Anomalies(100, records)
	if len(anomalies) != 1 {
		t.Fatalf("expected 1 anomaly, got %d", len(anomalies))
	}
	if anomalies[0] != "Asha on 2024-03-01 amount 500.00" {
		t.Fatalf("unexpected anomaly text: %s", anomalies[0])
	}
}

func TestAnomaliesIgnoresRowsBeyondScanLimit(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := make([]ExpenseRecord, 0, ScanLimit+1)
	for i := 0; i < ScanLimit; i++ {
		records = append(records, ExpenseRecord{EmployeeName: "Asha", Date: date, Amount: 5000})
	}
	// An eleventh-largest expense far above the mean stays outside the scan
	// window.
	records = append(records, ExpenseRecord{EmployeeName: "Ravi", Date: date, Amount: 4900})

	anomalies := Anomalies(100, records)
	if len(anomalies) != ScanLimit {
		t.Fatalf("expected %d anomalies, got %d", ScanLimit, len(anomalies))
	}
	for _, anomaly := range anomalies {
		if anomaly == "Ravi on 2024-03-01 amount 4900.00" {
			t.Fatal("row beyond the scan window must not be flagged")
		}
	}
}

func TestAnomaliesZeroMean(t *testing.T) {
	records := []ExpenseRecord{{EmployeeName: "Asha", Amount: 500}}
	if anomalies := Anomalies(0, records); anomalies != nil {
		t.Fatal("expected no anomalies with zero mean")
	}
}

func TestAttritionRisks(t *testing.T) {
	tallies := []AttendanceTally{
		{EmployeeName: "Asha", Absences: 4, Late: 0},
		{EmployeeName: "Ravi", Absences: 0, Late: 6},
		{EmployeeName: "Meera", Absences: 3, Late: 5},
	}

	risks := AttritionRisks(tallies)
	if len(risks) != 2 {
		t.Fatalf("expected 2 at-risk employees, got %d", len(risks))
	}
	if risks[0] != "Asha" || risks[1] != "Ravi" {
		t.Fatalf("unexpected risk list: %v", risks)
	}
}

func TestAttritionRisksThresholdsAreExclusive(t *testing.T) {
	tallies := []AttendanceTally{{EmployeeName: "Asha", Absences: AbsenceRiskThreshold, Late: LateRiskThreshold}}
	if risks := AttritionRisks(tallies); len(risks) != 0 {
		t.Fatalf("counts at the threshold must not flag, got %v", risks)
	}
}
