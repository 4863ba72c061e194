package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/models"
)

func newTestReminderService(t *testing.T) (*ReminderService, *ScheduleService) {
	t.Helper()
	schedule := newTestScheduleService(t)
	return NewReminderService(schedule, time.Hour, zap.NewNop()), schedule
}

func TestNextOpeningSameDayBeforeOpen(t *testing.T) {
	reminderSvc, scheduleSvc := newTestReminderService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)

	// Monday 07:00, store opens 09:00 the same day.
	from := time.Date(2025, 12, 1, 7, 0, 0, 0, cfg.Location())
	opening, err := reminderSvc.NextOpening(cfg, from)
	require.NoError(t, err)
	require.NotNil(t, opening)
	assert.Equal(t, "2025-12-01", opening.Date.ISO())
	assert.Equal(t, "09:00", opening.Open.String())
}

func TestNextOpeningSkipsToNextWeekAfterOpen(t *testing.T) {
	reminderSvc, scheduleSvc := newTestReminderService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)

	// Monday 09:00 exactly: today's open time is no longer strictly ahead,
	// so the scan lands on next Monday.
	from := time.Date(2025, 12, 1, 9, 0, 0, 0, cfg.Location())
	opening, err := reminderSvc.NextOpening(cfg, from)
	require.NoError(t, err)
	require.NotNil(t, opening)
	assert.Equal(t, "2025-12-08", opening.Date.ISO())
}

func TestNextOpeningNoneWithinHorizon(t *testing.T) {
	reminderSvc, scheduleSvc := newTestReminderService(t)

	// Every day of the following week is overridden closed.
	overrides := make([]dto.OverrideRecord, 0, 8)
	for day := 1; day <= 8; day++ {
		overrides = append(overrides, dto.OverrideRecord{Year: 2025, Month: 12, Day: day, IsOpen: false})
	}
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{
		weekdayRecord(1, "09:00", "17:00"),
		weekdayRecord(4, "09:00", "17:00"),
	}, overrides)

	from := time.Date(2025, 12, 1, 10, 0, 0, 0, cfg.Location())
	opening, err := reminderSvc.NextOpening(cfg, from)
	require.NoError(t, err)
	assert.Nil(t, opening)
}

func TestReminderTimeOneHourBeforeOpen(t *testing.T) {
	reminderSvc, scheduleSvc := newTestReminderService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)

	opening := models.Opening{
		Date: models.Date{Year: 2025, Month: time.December, Day: 1},
		Open: models.WallClock{Hour: 9},
	}
	reminderAt := reminderSvc.ReminderTime(cfg, opening)
	local := reminderAt.In(cfg.Location())
	assert.Equal(t, "2025-12-01", models.DateOf(local).ISO())
	assert.Equal(t, 8, local.Hour())
	assert.Equal(t, 0, local.Minute())
}

func TestReminderTimeRollsBackAcrossMidnight(t *testing.T) {
	reminderSvc, scheduleSvc := newTestReminderService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "00:30", "02:00")}, nil)

	opening := models.Opening{
		Date: models.Date{Year: 2025, Month: time.December, Day: 1},
		Open: models.WallClock{Minute: 30},
	}
	reminderAt := reminderSvc.ReminderTime(cfg, opening)
	local := reminderAt.In(cfg.Location())
	assert.Equal(t, "2025-11-30", models.DateOf(local).ISO())
	assert.Equal(t, 23, local.Hour())
	assert.Equal(t, 30, local.Minute())
}

func TestSchedulableRequiresOneMinuteLead(t *testing.T) {
	reminderSvc, _ := newTestReminderService(t)
	now := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)

	assert.True(t, reminderSvc.Schedulable(now.Add(2*time.Minute), now))
	assert.True(t, reminderSvc.Schedulable(now.Add(time.Minute), now))
	assert.False(t, reminderSvc.Schedulable(now.Add(30*time.Second), now))
	assert.False(t, reminderSvc.Schedulable(now.Add(-time.Hour), now))
}
