package advances

import (
	"context"
	"time"

	"hrportal/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, employeeID int64, date time.Time, amount float64, notes string) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO advances (employee_id, date, amount, notes)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, employeeID, date, amount, notes).Scan(&id)
	return id, err
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Advance, error) {
	query := `
    SELECT a.id, a.employee_id, e.name, a.date, a.amount, a.notes
    FROM advances a
    JOIN employees e ON a.employee_id = e.id
  `
	var args []any
	switch {
	case filter.Date != nil:
		query += ` WHERE a.date = $1`
		args = append(args, *filter.Date)
	case filter.MonthStart != nil && filter.MonthEnd != nil:
		query += ` WHERE a.date >= $1 AND a.date < $2`
		args = append(args, *filter.MonthStart, *filter.MonthEnd)
	}
	query += ` ORDER BY a.date, e.name, a.id`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Advance
	for rows.Next() {
		var adv Advance
		if err := rows.Scan(&adv.ID, &adv.EmployeeID, &adv.EmployeeName, &adv.Date, &adv.Amount, &adv.Notes); err != nil {
			return nil, err
		}
		out = append(out, adv)
	}
	return out, rows.Err()
}

func (s *Store) DeleteLast(ctx context.Context, employeeID int64) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM advances
    WHERE id = (
      SELECT id FROM advances
      WHERE employee_id = $1
      ORDER BY date DESC, id DESC
      LIMIT 1
    )
  `, employeeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
