package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/models"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
)

func newTestScheduleService(t *testing.T) *ScheduleService {
	t.Helper()
	return NewScheduleService(SystemLocationResolver{}, nil, zap.NewNop())
}

func weekdayRecord(day int, start, end string) dto.WeeklyHoursRecord {
	return dto.WeeklyHoursRecord{DayOfWeek: day, IsOpen: true, StartTime: start, EndTime: end}
}

func testConfig(t *testing.T, svc *ScheduleService, weekly []dto.WeeklyHoursRecord, overrides []dto.OverrideRecord) *models.ScheduleConfig {
	t.Helper()
	cfg, err := svc.BuildConfig("America/New_York", weekly, overrides)
	require.NoError(t, err)
	return cfg
}

func strPtr(v string) *string {
	return &v
}

func TestBuildConfigDropsClosedRecords(t *testing.T) {
	svc := newTestScheduleService(t)
	cfg := testConfig(t, svc, []dto.WeeklyHoursRecord{
		weekdayRecord(1, "09:00", "17:00"),
		{DayOfWeek: 2, IsOpen: false},
	}, nil)

	_, ok := cfg.WeeklyFor(time.Monday)
	assert.True(t, ok)
	_, ok = cfg.WeeklyFor(time.Tuesday)
	assert.False(t, ok)
}

func TestBuildConfigRejectsUnknownTimezone(t *testing.T) {
	svc := newTestScheduleService(t)
	_, err := svc.BuildConfig("Mars/Olympus_Mons", nil, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidTimezone.Code, appErrors.FromError(err).Code)
}

func TestBuildConfigRejectsInvertedWeeklyWindow(t *testing.T) {
	svc := newTestScheduleService(t)
	_, err := svc.BuildConfig("America/New_York", []dto.WeeklyHoursRecord{
		weekdayRecord(1, "17:00", "09:00"),
	}, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidSchedule.Code, appErrors.FromError(err).Code)
}

func TestBuildConfigRejectsOpenOverrideWithoutWindow(t *testing.T) {
	svc := newTestScheduleService(t)
	_, err := svc.BuildConfig("America/New_York", nil, []dto.OverrideRecord{
		{Year: 2025, Month: 7, Day: 4, IsOpen: true},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidOverride.Code, appErrors.FromError(err).Code)
}

func TestResolveDayOverridePrecedence(t *testing.T) {
	svc := newTestScheduleService(t)
	// Thursdays are normally open; 2025-12-25 is a Thursday with a closed
	// override, which must win.
	cfg := testConfig(t, svc,
		[]dto.WeeklyHoursRecord{weekdayRecord(4, "09:00", "17:00")},
		[]dto.OverrideRecord{{Year: 2025, Month: 12, Day: 25, IsOpen: false}},
	)

	day, err := svc.ResolveDay(cfg, models.Date{Year: 2025, Month: time.December, Day: 25})
	require.NoError(t, err)
	assert.False(t, day.IsOpen)

	// The Thursday one week earlier still follows the weekly table.
	day, err = svc.ResolveDay(cfg, models.Date{Year: 2025, Month: time.December, Day: 18})
	require.NoError(t, err)
	require.True(t, day.IsOpen)
	assert.Equal(t, "09:00", day.Open.String())
	assert.Equal(t, "17:00", day.Close.String())
}

func TestResolveDayOpenOverrideReplacesWindow(t *testing.T) {
	svc := newTestScheduleService(t)
	cfg := testConfig(t, svc,
		[]dto.WeeklyHoursRecord{weekdayRecord(4, "09:00", "17:00")},
		[]dto.OverrideRecord{{Year: 2025, Month: 12, Day: 25, IsOpen: true, StartTime: strPtr("12:00"), EndTime: strPtr("15:00")}},
	)

	day, err := svc.ResolveDay(cfg, models.Date{Year: 2025, Month: time.December, Day: 25})
	require.NoError(t, err)
	require.True(t, day.IsOpen)
	assert.Equal(t, "12:00", day.Open.String())
	assert.Equal(t, "15:00", day.Close.String())
}

func TestResolveDayNoWeeklyEntryMeansClosed(t *testing.T) {
	svc := newTestScheduleService(t)
	cfg := testConfig(t, svc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)

	// 2025-12-07 is a Sunday with no weekly entry and no override.
	day, err := svc.ResolveDay(cfg, models.Date{Year: 2025, Month: time.December, Day: 7})
	require.NoError(t, err)
	assert.False(t, day.IsOpen)
}

func TestIsOpenAtHalfOpenWindow(t *testing.T) {
	svc := newTestScheduleService(t)
	cfg := testConfig(t, svc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)
	loc := cfg.Location()

	cases := []struct {
		name    string
		instant time.Time
		open    bool
	}{
		{"before open", time.Date(2025, 12, 1, 8, 59, 0, 0, loc), false},
		{"at open", time.Date(2025, 12, 1, 9, 0, 0, 0, loc), true},
		{"mid day", time.Date(2025, 12, 1, 12, 30, 0, 0, loc), true},
		{"last minute", time.Date(2025, 12, 1, 16, 59, 0, 0, loc), true},
		{"at close", time.Date(2025, 12, 1, 17, 0, 0, 0, loc), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			open, _, err := svc.IsOpenAt(cfg, tc.instant)
			require.NoError(t, err)
			assert.Equal(t, tc.open, open)
		})
	}
}

func TestIsOpenAtConvertsToScheduleTimezone(t *testing.T) {
	svc := newTestScheduleService(t)
	cfg := testConfig(t, svc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)

	// 14:30 UTC on 2025-12-01 is 09:30 in New York (EST), inside the window.
	open, day, err := svc.IsOpenAt(cfg, time.Date(2025, 12, 1, 14, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, "2025-12-01", day.Date.ISO())
}
