package db

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate applies every pending .sql file from the embedded set in lexical
// order. Each file runs in one transaction together with its ledger row, so
// a failed migration leaves no partial state.
func Migrate(ctx context.Context, pool *pgxpool.Pool, files fs.FS) error {
	if _, err := pool.Exec(ctx, `
    CREATE TABLE IF NOT EXISTS schema_migrations (
      version TEXT PRIMARY KEY,
      applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )
  `); err != nil {
		return err
	}

	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		sqlBytes, err := fs.ReadFile(files, name)
		if err != nil {
			return err
		}
		if err := apply(ctx, pool, strings.TrimSuffix(name, ".sql"), string(sqlBytes)); err != nil {
			return err
		}
	}
	return nil
}

// apply claims the version inside the transaction. The ON CONFLICT guard
// skips files already recorded and serializes instances racing at boot.
func apply(ctx context.Context, pool *pgxpool.Pool, version, sql string) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
    INSERT INTO schema_migrations (version) VALUES ($1)
    ON CONFLICT (version) DO NOTHING
  `, version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return nil
	}

	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("migration %s failed: %w", version, err)
	}
	return tx.Commit(ctx)
}
