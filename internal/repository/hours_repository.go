package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/harborlane/storefront-api/internal/models"
)

// HoursRepository persists the weekly recurring hours table.
type HoursRepository struct {
	db *sqlx.DB
}

// NewHoursRepository creates a new hours repository.
func NewHoursRepository(db *sqlx.DB) *HoursRepository {
	return &HoursRepository{db: db}
}

// List returns every weekly-hours row ordered by weekday.
func (r *HoursRepository) List(ctx context.Context) ([]models.StoreHours, error) {
	query := "SELECT id, weekday, open_time, close_time, created_at, updated_at FROM store_hours ORDER BY weekday"
	var rows []models.StoreHours
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceAll swaps the entire weekly table inside one transaction so readers
// never observe a partially written week.
func (r *HoursRepository) ReplaceAll(ctx context.Context, entries []models.StoreHours) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM store_hours"); err != nil {
		return err
	}

	now := time.Now().UTC()
	insert := "INSERT INTO store_hours (id, weekday, open_time, close_time, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)"
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
		}
		entries[i].CreatedAt = now
		entries[i].UpdatedAt = now
		if _, err := tx.ExecContext(ctx, insert,
			entries[i].ID, entries[i].Weekday, entries[i].OpenTime, entries[i].CloseTime, now, now,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
