package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hrportal/internal/platform/querier"
)

// Store is the single access path for runtime settings. Reads may observe a
// rate that a concurrent update has just replaced; callers accept that.
type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// Get returns the setting, falling back to its default when the row has
// never been written.
func (s *Store) Get(ctx context.Context, key string, fallback float64) (Setting, error) {
	setting := Setting{Key: key, Value: fallback, Version: 0}
	err := s.DB.QueryRow(ctx, `
    SELECT value, version FROM app_settings WHERE key = $1
  `, key).Scan(&setting.Value, &setting.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return setting, nil
	}
	if err != nil {
		return Setting{}, err
	}
	return setting, nil
}

// Set writes the value, bumping the version so readers can tell updates
// apart.
func (s *Store) Set(ctx context.Context, key string, value float64) (Setting, error) {
	setting := Setting{Key: key}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO app_settings (key, value, version)
    VALUES ($1, $2, 1)
    ON CONFLICT (key) DO UPDATE
    SET value = EXCLUDED.value, version = app_settings.version + 1, updated_at = now()
    RETURNING value, version
  `, key, value).Scan(&setting.Value, &setting.Version)
	if err != nil {
		return Setting{}, err
	}
	return setting, nil
}

// TravelRate is a convenience wrapper for the one setting every expense
// write needs.
func (s *Store) TravelRate(ctx context.Context) (float64, error) {
	setting, err := s.Get(ctx, KeyTravelRate, DefaultTravelRate)
	if err != nil {
		return 0, err
	}
	return setting.Value, nil
}
