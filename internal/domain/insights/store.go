package insights

import (
	"context"
	"time"

	"hrportal/internal/domain/attendance"
	"hrportal/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) MeanGeneralExpense(ctx context.Context) (float64, error) {
	var mean float64
	err := s.DB.QueryRow(ctx, `SELECT COALESCE(AVG(amount), 0) FROM general_expenses`).Scan(&mean)
	if err != nil {
		return 0, err
	}
	return mean, nil
}

// TopGeneralExpenses returns the largest general expenses, the candidate set
// for the anomaly scan.
func (s *Store) TopGeneralExpenses(ctx context.Context, limit int) ([]ExpenseRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.name, g.date, g.amount
    FROM general_expenses g
    JOIN employees e ON g.employee_id = e.id
    ORDER BY g.amount DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExpenseRecord
	for rows.Next() {
		var rec ExpenseRecord
		if err := rows.Scan(&rec.EmployeeName, &rec.Date, &rec.Amount); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// AttendanceTallies counts absences and late arrivals per employee since the
// given date. Midnight check-ins count as absences, matching the legacy
// sentinel.
func (s *Store) AttendanceTallies(ctx context.Context, since time.Time) ([]AttendanceTally, error) {
	midnight := attendance.NewTimeOfDay(0, 0)
	rows, err := s.DB.Query(ctx, `
    SELECT e.name,
           COUNT(a.id) FILTER (WHERE a.shift1_in IS NULL OR a.shift1_in = $2::time),
           COUNT(a.id) FILTER (WHERE a.shift1_in > $3::time)
    FROM employees e
    LEFT JOIN attendance a ON a.employee_id = e.id AND a.date >= $1
    GROUP BY e.name
    ORDER BY e.name
  `, since, midnight.Clock24(), attendance.LateCutoff.Clock24())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AttendanceTally
	for rows.Next() {
		var tally AttendanceTally
		if err := rows.Scan(&tally.EmployeeName, &tally.Absences, &tally.Late); err != nil {
			return nil, err
		}
		out = append(out, tally)
	}
	return out, rows.Err()
}
