package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/models"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
)

type hoursWriter interface {
	hoursReader
	ReplaceAll(ctx context.Context, entries []models.StoreHours) error
}

type overrideWriter interface {
	overrideReader
	Upsert(ctx context.Context, override *models.StoreOverride) error
	DeleteByDate(ctx context.Context, year, month, day int) error
}

// HoursService handles the admin write path: weekly-hours replacement and
// override upserts. Every successful write rebuilds the snapshot so the read
// path picks the change up immediately.
type HoursService struct {
	hours     hoursWriter
	overrides overrideWriter
	schedule  *ScheduleService
	snapshot  *SnapshotProvider
	timezone  string
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHoursService instantiates HoursService.
func NewHoursService(hours hoursWriter, overrides overrideWriter, schedule *ScheduleService, snapshot *SnapshotProvider, timezone string, validate *validator.Validate, logger *zap.Logger) *HoursService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HoursService{
		hours:     hours,
		overrides: overrides,
		schedule:  schedule,
		snapshot:  snapshot,
		timezone:  timezone,
		validator: validate,
		logger:    logger,
	}
}

// ReplaceWeekly validates and persists a full weekly table. The payload is
// probed through the schedule builder first, so malformed hours are rejected
// before anything is written.
func (s *HoursService) ReplaceWeekly(ctx context.Context, req dto.ReplaceHoursRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid weekly hours payload")
	}
	if _, err := s.schedule.BuildConfig(s.timezone, req.Items, nil); err != nil {
		return err
	}

	rows := make([]models.StoreHours, 0, len(req.Items))
	for _, record := range req.Items {
		if !record.IsOpen {
			continue
		}
		rows = append(rows, models.StoreHours{
			Weekday:   record.DayOfWeek,
			OpenTime:  record.StartTime,
			CloseTime: record.EndTime,
		})
	}

	if err := s.hours.ReplaceAll(ctx, rows); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store weekly hours")
	}

	s.snapshot.Refresh(ctx)
	return nil
}

// UpsertOverride validates and persists one date override.
func (s *HoursService) UpsertOverride(ctx context.Context, record dto.OverrideRecord) error {
	if err := s.validator.Struct(record); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid override payload")
	}
	if _, err := s.schedule.BuildConfig(s.timezone, nil, []dto.OverrideRecord{record}); err != nil {
		return err
	}

	row := models.StoreOverride{
		Year:      record.Year,
		Month:     record.Month,
		Day:       record.Day,
		IsOpen:    record.IsOpen,
		OpenTime:  record.StartTime,
		CloseTime: record.EndTime,
	}
	if err := s.overrides.Upsert(ctx, &row); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store override")
	}

	s.snapshot.Refresh(ctx)
	return nil
}

// DeleteOverride removes the override for one calendar date.
func (s *HoursService) DeleteOverride(ctx context.Context, date models.Date) error {
	if err := s.overrides.DeleteByDate(ctx, date.Year, int(date.Month), date.Day); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "no override for "+date.ISO())
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete override")
	}

	s.snapshot.Refresh(ctx)
	return nil
}
