package attendance

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB scripts the single-row lookup and records every statement executed.
type fakeDB struct {
	rowErr  error
	rowID   int64
	execSQL []string
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return fakeRow{err: f.rowErr, id: f.rowID}
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	return pgconn.CommandTag{}, nil
}

type fakeRow struct {
	err error
	id  int64
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if id, ok := dest[0].(*int64); ok {
			*id = r.id
		}
	}
	return nil
}

func TestUpsertInsertsWhenMissing(t *testing.T) {
	db := &fakeDB{rowErr: pgx.ErrNoRows}
	store := NewStore(db)

	created, err := store.Upsert(context.Background(), 1, time.Now(), Shifts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected a new row to be created")
	}
	if len(db.execSQL) != 1 || !strings.Contains(db.execSQL[0], "INSERT INTO attendance") {
		t.Fatalf("expected one insert, got %v", db.execSQL)
	}
}

func TestUpsertUpdatesExistingRow(t *testing.T) {
	db := &fakeDB{rowID: 7}
	store := NewStore(db)

	created, err := store.Upsert(context.Background(), 1, time.Now(), Shifts{Shift1In: clockAt(9, 15)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("a second submission for the same day must update, not create")
	}
	if len(db.execSQL) != 1 || !strings.Contains(db.execSQL[0], "UPDATE attendance") {
		t.Fatalf("expected one update and no insert, got %v", db.execSQL)
	}
}

func clockAt(hour, minute int) *TimeOfDay {
	t := NewTimeOfDay(hour, minute)
	return &t
}
