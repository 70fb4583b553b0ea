package reports

import (
	"context"
	"fmt"
	"time"

	"hrportal/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) TravelRange(ctx context.Context, start, end *time.Time) ([]ExpenseRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.name, t.date, t.distance, t.amount
    FROM travel_expenses t
    JOIN employees e ON t.employee_id = e.id
    WHERE ($1::date IS NULL OR t.date >= $1)
      AND ($2::date IS NULL OR t.date <= $2)
    ORDER BY t.date, e.name, t.id
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExpenseRow
	for rows.Next() {
		var row ExpenseRow
		var distance float64
		if err := rows.Scan(&row.EmployeeName, &row.Date, &distance, &row.Amount); err != nil {
			return nil, err
		}
		row.Description = fmt.Sprintf("%.1f km", distance)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) GeneralRange(ctx context.Context, start, end *time.Time) ([]ExpenseRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.name, g.date, g.description, g.amount
    FROM general_expenses g
    JOIN employees e ON g.employee_id = e.id
    WHERE ($1::date IS NULL OR g.date >= $1)
      AND ($2::date IS NULL OR g.date <= $2)
    ORDER BY g.date, e.name, g.id
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExpenseRow
	for rows.Next() {
		var row ExpenseRow
		if err := rows.Scan(&row.EmployeeName, &row.Date, &row.Description, &row.Amount); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
