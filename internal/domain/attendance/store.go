package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"hrportal/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// Shifts carries the four optional shift times of one attendance row.
type Shifts struct {
	Shift1In  *TimeOfDay
	Shift1Out *TimeOfDay
	Shift2In  *TimeOfDay
	Shift2Out *TimeOfDay
}

// Upsert writes the attendance row for (employee, date), creating it if
// missing. Returns true when a new row was created.
func (s *Store) Upsert(ctx context.Context, employeeID int64, date time.Time, shifts Shifts) (bool, error) {
	var existingID int64
	err := s.DB.QueryRow(ctx, `
    SELECT id FROM attendance WHERE employee_id = $1 AND date = $2
  `, employeeID, date).Scan(&existingID)
	if errors.Is(err, pgx.ErrNoRows) {
		_, err = s.DB.Exec(ctx, `
      INSERT INTO attendance (employee_id, date, shift1_in, shift1_out, shift2_in, shift2_out)
      VALUES ($1, $2, $3, $4, $5, $6)
    `, employeeID, date, toDBTime(shifts.Shift1In), toDBTime(shifts.Shift1Out), toDBTime(shifts.Shift2In), toDBTime(shifts.Shift2Out))
		if err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	_, err = s.DB.Exec(ctx, `
    UPDATE attendance
    SET shift1_in = $2, shift1_out = $3, shift2_in = $4, shift2_out = $5
    WHERE id = $1
  `, existingID, toDBTime(shifts.Shift1In), toDBTime(shifts.Shift1Out), toDBTime(shifts.Shift2In), toDBTime(shifts.Shift2Out))
	return false, err
}

func (s *Store) ListByDate(ctx context.Context, date time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.employee_id, e.name, a.date,
           a.shift1_in, a.shift1_out, a.shift2_in, a.shift2_out
    FROM attendance a
    JOIN employees e ON a.employee_id = e.id
    WHERE a.date = $1
    ORDER BY e.name
  `, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *Store) ListRange(ctx context.Context, start, end *time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.employee_id, e.name, a.date,
           a.shift1_in, a.shift1_out, a.shift2_in, a.shift2_out
    FROM attendance a
    JOIN employees e ON a.employee_id = e.id
    WHERE ($1::date IS NULL OR a.date >= $1)
      AND ($2::date IS NULL OR a.date <= $2)
    ORDER BY a.date, e.name
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *Store) Delete(ctx context.Context, employeeID int64, date time.Time) error {
	_, err := s.DB.Exec(ctx, `
    DELETE FROM attendance WHERE employee_id = $1 AND date = $2
  `, employeeID, date)
	return err
}

func (s *Store) DeleteAllForDate(ctx context.Context, date time.Time) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM attendance WHERE date = $1`, date)
	return err
}

func scanRecords(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var rec Record
		var in1, out1, in2, out2 pgtype.Time
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Date, &in1, &out1, &in2, &out2); err != nil {
			return nil, err
		}
		rec.Shift1In = fromDBTime(in1)
		rec.Shift1Out = fromDBTime(out1)
		rec.Shift2In = fromDBTime(in2)
		rec.Shift2Out = fromDBTime(out2)
		records = append(records, rec)
	}
	return records, rows.Err()
}

const microsPerMinute = 60 * 1_000_000

func toDBTime(t *TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: int64(*t) * microsPerMinute, Valid: true}
}

// fromDBTime converts a stored TIME to a TimeOfDay. A stored midnight is the
// legacy "not recorded" sentinel and maps to nil.
func fromDBTime(t pgtype.Time) *TimeOfDay {
	if !t.Valid || t.Microseconds == 0 {
		return nil
	}
	tod := TimeOfDay(t.Microseconds / microsPerMinute)
	return &tod
}
