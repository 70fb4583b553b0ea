package expenses

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

func (s *Store) InsertTravel(ctx context.Context, exp TravelExpense) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO travel_expenses (employee_id, date, start_reading, end_reading, distance, rate, amount)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, exp.EmployeeID, exp.Date, exp.StartReading, exp.EndReading, exp.Distance, exp.Rate, exp.Amount).Scan(&id)
	return id, err
}

func (s *Store) TravelByDate(ctx context.Context, date time.Time) ([]TravelExpense, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT t.id, t.employee_id, e.name, t.date, t.start_reading, t.end_reading, t.distance, t.rate, t.amount
    FROM travel_expenses t
    JOIN employees e ON t.employee_id = e.id
    WHERE t.date = $1
    ORDER BY e.name, t.id
  `, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TravelExpense
	for rows.Next() {
		var exp TravelExpense
		if err := rows.Scan(&exp.ID, &exp.EmployeeID, &exp.EmployeeName, &exp.Date, &exp.StartReading, &exp.EndReading, &exp.Distance, &exp.Rate, &exp.Amount); err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

// TravelReadings returns the odometer readings logged for one employee on one
// date, for pre-filling the entry form.
func (s *Store) TravelReadings(ctx context.Context, employeeID int64, date time.Time) (start, end float64, err error) {
	err = s.DB.QueryRow(ctx, `
    SELECT start_reading, end_reading
    FROM travel_expenses
    WHERE employee_id = $1 AND date = $2
    ORDER BY id
    LIMIT 1
  `, employeeID, date).Scan(&start, &end)
	return start, end, err
}

// DeleteLastTravel removes the employee's most recent travel expense.
// Returns the number of rows removed.
func (s *Store) DeleteLastTravel(ctx context.Context, employeeID int64) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM travel_expenses
    WHERE id = (
      SELECT id FROM travel_expenses
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

func (s *Store) InsertGeneral(ctx context.Context, employeeID int64, date time.Time, lines []Line) error {
	for _, line := range lines {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO general_expenses (employee_id, date, description, amount)
      VALUES ($1, $2, $3, $4)
    `, employeeID, date, line.Description, line.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GeneralByDate(ctx context.Context, date time.Time) ([]GeneralExpense, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT g.id, g.employee_id, e.name, g.date, g.description, g.amount
    FROM general_expenses g
    JOIN employees e ON g.employee_id = e.id
    WHERE g.date = $1
    ORDER BY e.name, g.id
  `, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GeneralExpense
	for rows.Next() {
		var exp GeneralExpense
		if err := rows.Scan(&exp.ID, &exp.EmployeeID, &exp.EmployeeName, &exp.Date, &exp.Description, &exp.Amount); err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

func (s *Store) GeneralLines(ctx context.Context, employeeID int64, date time.Time) ([]Line, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT description, amount
    FROM general_expenses
    WHERE employee_id = $1 AND date = $2
    ORDER BY id
  `, employeeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]Line, 0, 4)
	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.Description, &line.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *Store) DeleteLastGeneral(ctx context.Context, employeeID int64) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM general_expenses
    WHERE id = (
      SELECT id FROM general_expenses
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

// Totals sums every expense category for the summary endpoint.
func (s *Store) Totals(ctx context.Context) (Summary, error) {
	var summary Summary
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE((SELECT SUM(amount) FROM travel_expenses), 0),
           COALESCE((SELECT SUM(amount) FROM general_expenses), 0),
           COALESCE((SELECT SUM(amount) FROM advances), 0)
  `).Scan(&summary.TravelTotal, &summary.GeneralTotal, &summary.AdvancesTotal)
	return summary, err
}
