package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/models"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
)

// ScheduleService builds schedule snapshots from raw feed records and decides
// open/closed status per calendar date. All computations are pure over the
// immutable snapshot passed in.
type ScheduleService struct {
	locations LocationResolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService instantiates ScheduleService.
func NewScheduleService(locations LocationResolver, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if locations == nil {
		locations = SystemLocationResolver{}
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{locations: locations, validator: validate, logger: logger}
}

// BuildConfig converts raw weekly-hours and override records into a validated
// snapshot. Weekly records flagged closed are dropped; the rest must carry a
// parseable window. Override dates name an explicit year.
func (s *ScheduleService) BuildConfig(timezone string, weekly []dto.WeeklyHoursRecord, overrides []dto.OverrideRecord) (*models.ScheduleConfig, error) {
	loc, err := s.locations.Resolve(timezone)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidTimezone.Code, appErrors.ErrInvalidTimezone.Status, fmt.Sprintf("unknown timezone %q", timezone))
	}

	entries := make([]models.WeeklyHours, 0, len(weekly))
	for _, record := range weekly {
		if !record.IsOpen {
			continue
		}
		if err := s.validator.Struct(record); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidSchedule.Code, appErrors.ErrInvalidSchedule.Status, "invalid weekly hours record")
		}
		open, err := models.ParseWallClock(record.StartTime)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidSchedule.Code, appErrors.ErrInvalidSchedule.Status, "invalid weekly open time")
		}
		closeAt, err := models.ParseWallClock(record.EndTime)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidSchedule.Code, appErrors.ErrInvalidSchedule.Status, "invalid weekly close time")
		}
		entries = append(entries, models.WeeklyHours{
			Weekday: time.Weekday(record.DayOfWeek),
			Open:    open,
			Close:   closeAt,
		})
	}

	dateOverrides := make([]models.DateOverride, 0, len(overrides))
	for _, record := range overrides {
		if err := s.validator.Struct(record); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidOverride.Code, appErrors.ErrInvalidOverride.Status, "invalid override record")
		}
		ov := models.DateOverride{
			Date:   models.Date{Year: record.Year, Month: time.Month(record.Month), Day: record.Day},
			IsOpen: record.IsOpen,
		}
		if record.IsOpen {
			if record.StartTime == nil || record.EndTime == nil {
				return nil, appErrors.Clone(appErrors.ErrInvalidOverride, fmt.Sprintf("override %s is open without a time window", ov.Date.ISO()))
			}
			open, err := models.ParseWallClock(*record.StartTime)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInvalidOverride.Code, appErrors.ErrInvalidOverride.Status, "invalid override open time")
			}
			closeAt, err := models.ParseWallClock(*record.EndTime)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInvalidOverride.Code, appErrors.ErrInvalidOverride.Status, "invalid override close time")
			}
			ov.Open = &open
			ov.Close = &closeAt
		}
		dateOverrides = append(dateOverrides, ov)
	}

	return models.NewScheduleConfig(timezone, loc, entries, dateOverrides)
}

// ResolveDay decides whether the store is open on the given calendar date and
// what the effective window is. An override for the date is authoritative;
// otherwise the weekly table applies; absence means closed.
func (s *ScheduleService) ResolveDay(cfg *models.ScheduleConfig, date models.Date) (models.ResolvedDay, error) {
	if ov, ok := cfg.OverrideFor(date); ok {
		if !ov.IsOpen {
			return models.ResolvedDay{Date: date, IsOpen: false}, nil
		}
		if ov.Open == nil || ov.Close == nil {
			return models.ResolvedDay{}, appErrors.Clone(appErrors.ErrInvalidOverride, fmt.Sprintf("override %s is open without a time window", date.ISO()))
		}
		return models.ResolvedDay{Date: date, IsOpen: true, Open: *ov.Open, Close: *ov.Close}, nil
	}

	if entry, ok := cfg.WeeklyFor(date.Weekday()); ok {
		return models.ResolvedDay{Date: date, IsOpen: true, Open: entry.Open, Close: entry.Close}, nil
	}

	return models.ResolvedDay{Date: date, IsOpen: false}, nil
}

// IsOpenAt reports whether the store is open at an absolute instant. The
// instant is converted to the schedule's timezone; open windows are half-open
// [open, close).
func (s *ScheduleService) IsOpenAt(cfg *models.ScheduleConfig, instant time.Time) (bool, models.ResolvedDay, error) {
	local := instant.In(cfg.Location())
	day, err := s.ResolveDay(cfg, models.DateOf(local))
	if err != nil {
		return false, models.ResolvedDay{}, err
	}
	if !day.IsOpen {
		return false, day, nil
	}

	minute := local.Hour()*60 + local.Minute()
	open := minute >= day.Open.MinuteOfDay() && minute < day.Close.MinuteOfDay()
	return open, day, nil
}
