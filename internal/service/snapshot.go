package service

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/models"
)

type hoursReader interface {
	List(ctx context.Context) ([]models.StoreHours, error)
}

type overrideReader interface {
	List(ctx context.Context) ([]models.StoreOverride, error)
}

// SnapshotProvider owns the latest schedule snapshot. Refresh builds a fresh
// immutable config and swaps it in atomically; readers hold whichever
// snapshot they captured for the duration of their computation, so an
// in-flight slot generation never observes a torn mix of old and new hours.
// When loading or validation fails the provider falls back to the hardcoded
// default schedule rather than surfacing the failure.
type SnapshotProvider struct {
	hours     hoursReader
	overrides overrideReader
	schedule  *ScheduleService
	timezone  string
	logger    *zap.Logger

	current atomic.Pointer[models.ScheduleConfig]
	version atomic.Uint64
}

// NewSnapshotProvider seeds the provider with the default schedule so
// Current never returns nil, even before the first refresh.
func NewSnapshotProvider(hours hoursReader, overrides overrideReader, schedule *ScheduleService, timezone string, logger *zap.Logger) *SnapshotProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &SnapshotProvider{
		hours:     hours,
		overrides: overrides,
		schedule:  schedule,
		timezone:  timezone,
		logger:    logger,
	}
	p.current.Store(models.DefaultScheduleConfig())
	return p
}

// Current returns the latest snapshot.
func (p *SnapshotProvider) Current() *models.ScheduleConfig {
	return p.current.Load()
}

// Version increments on every swap; cache keys embed it so stale slot
// payloads die with the snapshot that produced them.
func (p *SnapshotProvider) Version() uint64 {
	return p.version.Load()
}

// Refresh rebuilds the snapshot from storage. The previous snapshot stays
// live until the replacement is fully built. Returns whether the stored
// schedule was used (false means the default fallback is active).
func (p *SnapshotProvider) Refresh(ctx context.Context) bool {
	cfg, ok := p.build(ctx)
	if !ok {
		cfg = models.DefaultScheduleConfig()
	}
	p.current.Store(cfg)
	p.version.Add(1)
	return ok
}

func (p *SnapshotProvider) build(ctx context.Context) (*models.ScheduleConfig, bool) {
	hourRows, err := p.hours.List(ctx)
	if err != nil {
		p.logger.Warn("schedule refresh: loading weekly hours failed, using default schedule", zap.Error(err))
		return nil, false
	}
	overrideRows, err := p.overrides.List(ctx)
	if err != nil {
		p.logger.Warn("schedule refresh: loading overrides failed, using default schedule", zap.Error(err))
		return nil, false
	}

	weekly := make([]dto.WeeklyHoursRecord, 0, len(hourRows))
	for _, row := range hourRows {
		weekly = append(weekly, dto.WeeklyHoursRecord{
			DayOfWeek: row.Weekday,
			IsOpen:    true,
			StartTime: row.OpenTime,
			EndTime:   row.CloseTime,
		})
	}

	overrides := make([]dto.OverrideRecord, 0, len(overrideRows))
	for _, row := range overrideRows {
		overrides = append(overrides, dto.OverrideRecord{
			Year:      row.Year,
			Month:     row.Month,
			Day:       row.Day,
			IsOpen:    row.IsOpen,
			StartTime: row.OpenTime,
			EndTime:   row.CloseTime,
		})
	}

	cfg, err := p.schedule.BuildConfig(p.timezone, weekly, overrides)
	if err != nil {
		p.logger.Warn("schedule refresh: stored schedule invalid, using default schedule", zap.Error(err))
		return nil, false
	}
	return cfg, true
}
