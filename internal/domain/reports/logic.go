package reports

import (
	"sort"

	"hrportal/internal/domain/attendance"
)

// Summarize tallies an attendance report's headline numbers. Present/absent
// are per record, matching the detail table; the employee count is distinct.
func Summarize(records []attendance.Record) AttendanceStats {
	stats := AttendanceStats{TotalRecords: len(records)}
	names := make(map[string]struct{})
	for _, rec := range records {
		names[rec.EmployeeName] = struct{}{}
		switch attendance.Status(rec.Shift1In) {
		case attendance.StatusAbsent:
			stats.Absent++
		case attendance.StatusLate:
			stats.Present++
			stats.Late++
		default:
			stats.Present++
		}
	}
	stats.TotalEmployees = len(names)
	return stats
}

// EmployeeTotals folds expense rows into per-employee subtotals, sorted by
// name, plus the grand total. The grand total always equals the sum of the
// subtotals.
func EmployeeTotals(rows []ExpenseRow) ([]EmployeeTotal, float64) {
	byName := make(map[string]float64)
	for _, row := range rows {
		byName[row.EmployeeName] += row.Amount
	}

	totals := make([]EmployeeTotal, 0, len(byName))
	var grand float64
	for name, total := range byName {
		totals = append(totals, EmployeeTotal{EmployeeName: name, Total: total})
		grand += total
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].EmployeeName < totals[j].EmployeeName
	})
	return totals, grand
}

// GroupByDate splits expense rows into per-date sections with day totals,
// sorted chronologically.
func GroupByDate(rows []ExpenseRow) []DayGroup {
	byDate := make(map[string][]ExpenseRow)
	for _, row := range rows {
		key := row.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], row)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]DayGroup, 0, len(dates))
	for _, date := range dates {
		group := DayGroup{Date: date, Rows: byDate[date]}
		for _, row := range group.Rows {
			group.Total += row.Amount
		}
		groups = append(groups, group)
	}
	return groups
}
