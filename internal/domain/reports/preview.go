package reports

import (
	"context"
	"strings"
	"time"

	"hrportal/internal/domain/attendance"
)

// Preview returns the same report data as the PDF in tabular form for the
// frontend to render inline.
func (s *Service) Preview(ctx context.Context, req Request) ([]string, [][]any, error) {
	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case TypeAttendance:
		records, err := s.Attendance.ListRange(ctx, req.StartDate, req.EndDate)
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]any, 0, len(records))
		for _, rec := range records {
			rows = append(rows, []any{
				rec.Date.Format("2006-01-02"),
				rec.EmployeeName,
				clockOrDash(rec.Shift1In),
				clockOrDash(rec.Shift1Out),
				attendance.Status(rec.Shift1In),
			})
		}
		return []string{"Date", "Employee", "Check In", "Check Out", "Status"}, rows, nil
	case TypeTravel:
		return s.expensePreview(ctx, req, s.Store.TravelRange)
	case TypeGeneral:
		return s.expensePreview(ctx, req, s.Store.GeneralRange)
	default:
		return []string{"Date", "Employee", "Amount"}, [][]any{}, nil
	}
}

func (s *Service) expensePreview(ctx context.Context, req Request, fetch func(context.Context, *time.Time, *time.Time) ([]ExpenseRow, error)) ([]string, [][]any, error) {
	rows, err := fetch(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, nil, err
	}
	out := make([][]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, []any{
			row.Date.Format("2006-01-02"),
			row.EmployeeName,
			row.Description,
			row.Amount,
		})
	}
	return []string{"Date", "Employee", "Description", "Amount"}, out, nil
}
