package roster

import (
	"context"
	"strings"

	"hrportal/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT id, name FROM employees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]Employee, 0, 16)
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Create inserts a new employee. The unique index on lower(name) turns a
// case-insensitive duplicate into a pgconn unique-violation error.
func (s *Store) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name) VALUES ($1) RETURNING id
  `, strings.TrimSpace(name)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `SELECT COUNT(1) FROM employees`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `SELECT id, name FROM employees WHERE id = $1`, id).Scan(&emp.ID, &emp.Name)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// Delete removes the employee; the schema cascades the delete to attendance,
// expense, and advance rows. Returns the deleted employee's name.
func (s *Store) Delete(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING name`, id).Scan(&name)
	if err != nil {
		return "", err
	}
	return name, nil
}
