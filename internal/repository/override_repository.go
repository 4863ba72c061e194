package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/harborlane/storefront-api/internal/models"
)

// OverrideRepository persists date-specific schedule exceptions.
type OverrideRepository struct {
	db *sqlx.DB
}

// NewOverrideRepository creates a new override repository.
func NewOverrideRepository(db *sqlx.DB) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// List returns every override ordered by date.
func (r *OverrideRepository) List(ctx context.Context) ([]models.StoreOverride, error) {
	query := "SELECT id, year, month, day, is_open, open_time, close_time, created_at, updated_at FROM store_overrides ORDER BY year, month, day"
	var rows []models.StoreOverride
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert inserts or replaces the override for its date. One row per calendar
// date; a second write for the same date wins.
func (r *OverrideRepository) Upsert(ctx context.Context, override *models.StoreOverride) error {
	if override.ID == "" {
		override.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	override.UpdatedAt = now

	query := `INSERT INTO store_overrides (id, year, month, day, is_open, open_time, close_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (year, month, day) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		override.ID, override.Year, override.Month, override.Day,
		override.IsOpen, override.OpenTime, override.CloseTime, now,
	)
	return err
}

// DeleteByDate removes the override for one calendar date.
func (r *OverrideRepository) DeleteByDate(ctx context.Context, year, month, day int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM store_overrides WHERE year = $1 AND month = $2 AND day = $3", year, month, day)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
