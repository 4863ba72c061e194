package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborlane/storefront-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestHoursRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewHoursRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "weekday", "open_time", "close_time", "created_at", "updated_at"}).
		AddRow("hours-1", 1, "09:00", "17:00", now, now).
		AddRow("hours-2", 6, "10:00", "16:00", now, now)
	mock.ExpectQuery("SELECT id, weekday, open_time, close_time").
		WillReturnRows(rows)

	result, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].Weekday)
	assert.Equal(t, "09:00", result[0].OpenTime)
	assert.Equal(t, 6, result[1].Weekday)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHoursRepositoryReplaceAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewHoursRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM store_hours").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("INSERT INTO store_hours").
		WithArgs(sqlmock.AnyArg(), 1, "09:00", "17:00", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO store_hours").
		WithArgs(sqlmock.AnyArg(), 6, "10:00", "16:00", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	entries := []models.StoreHours{
		{Weekday: 1, OpenTime: "09:00", CloseTime: "17:00"},
		{Weekday: 6, OpenTime: "10:00", CloseTime: "16:00"},
	}
	require.NoError(t, repo.ReplaceAll(context.Background(), entries))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHoursRepositoryReplaceAllRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewHoursRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM store_hours").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO store_hours").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), []models.StoreHours{
		{Weekday: 1, OpenTime: "09:00", CloseTime: "17:00"},
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
