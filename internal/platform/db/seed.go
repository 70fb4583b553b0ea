package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrportal/internal/domain/settings"
)

// Seed ensures the settings rows the service reads at runtime exist.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO app_settings (key, value, version)
    VALUES ($1, $2, 1)
    ON CONFLICT (key) DO NOTHING
  `, settings.KeyTravelRate, settings.DefaultTravelRate)
	return err
}
