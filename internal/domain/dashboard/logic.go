package dashboard

import "hrportal/internal/domain/attendance"

type Counts struct {
	PresentCount int `json:"present_count"`
	LateCount    int `json:"late_count"`
	AbsentCount  int `json:"absent_count"`
}

// Summarize counts distinct employees with a recorded first-shift check-in
// today, the subset of those who arrived after the cutoff, and the remainder
// of the roster as absent. Recomputed in full on every request.
func Summarize(totalEmployees int, records []attendance.Record) Counts {
	present := make(map[int64]struct{})
	late := make(map[int64]struct{})

	for _, rec := range records {
		if rec.Shift1In == nil {
			continue
		}
		present[rec.EmployeeID] = struct{}{}
		if attendance.Status(rec.Shift1In) == attendance.StatusLate {
			late[rec.EmployeeID] = struct{}{}
		}
	}

	absent := totalEmployees - len(present)
	if absent < 0 {
		absent = 0
	}

	return Counts{
		PresentCount: len(present),
		LateCount:    len(late),
		AbsentCount:  absent,
	}
}
