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

func newTestSlotService(t *testing.T) (*SlotService, *ScheduleService) {
	t.Helper()
	schedule := newTestScheduleService(t)
	return NewSlotService(schedule, 15*time.Minute, zap.NewNop()), schedule
}

func TestGenerateSlotsMondayFullDay(t *testing.T) {
	slotSvc, scheduleSvc := newTestSlotService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)

	// 2025-12-01 is a Monday: 8 open hours at 15 minutes per slot.
	slots, err := slotSvc.GenerateSlots(cfg, models.Date{Year: 2025, Month: time.December, Day: 1}, nil)
	require.NoError(t, err)
	require.Len(t, slots, 32)
	assert.Equal(t, "2025-12-01T09:00", slots[0].ID)
	assert.Equal(t, "2025-12-01T16:45", slots[31].ID)
	assert.Equal(t, "9:00 AM", slots[0].DisplayLabel)
	for _, slot := range slots {
		assert.True(t, slot.IsAvailable)
		assert.False(t, slot.IsSelected)
	}
}

func TestGenerateSlotsExcludesCloseBoundary(t *testing.T) {
	slotSvc, scheduleSvc := newTestSlotService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "10:00")}, nil)

	slots, err := slotSvc.GenerateSlots(cfg, models.Date{Year: 2025, Month: time.December, Day: 1}, nil)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, "09:45", slots[3].StartTime)
}

func TestGenerateSlotsFloorsPartialInterval(t *testing.T) {
	slotSvc, scheduleSvc := newTestSlotService(t)
	// 50 open minutes yield floor(50/15) = 3 slots.
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "09:50")}, nil)

	slots, err := slotSvc.GenerateSlots(cfg, models.Date{Year: 2025, Month: time.December, Day: 1}, nil)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:30", slots[2].StartTime)
}

func TestGenerateSlotsClosedDateIsEmpty(t *testing.T) {
	slotSvc, scheduleSvc := newTestSlotService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)

	// 2025-12-02 is a Tuesday with no weekly entry.
	slots, err := slotSvc.GenerateSlots(cfg, models.Date{Year: 2025, Month: time.December, Day: 2}, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	slotSvc, scheduleSvc := newTestSlotService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)
	date := models.Date{Year: 2025, Month: time.December, Day: 1}

	first, err := slotSvc.GenerateSlots(cfg, date, nil)
	require.NoError(t, err)
	second, err := slotSvc.GenerateSlots(cfg, date, nil)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestGenerateSlotsLabelsInDisplayTimezone(t *testing.T) {
	slotSvc, scheduleSvc := newTestSlotService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "17:00")}, nil)

	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	slots, err := slotSvc.GenerateSlots(cfg, models.Date{Year: 2025, Month: time.December, Day: 1}, la)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// Start times stay schedule-local; only the label moves to the display
	// timezone (New York 09:00 is 06:00 in Los Angeles in December).
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "6:00 AM", slots[0].DisplayLabel)
}

func TestMarkSelectedIsExclusive(t *testing.T) {
	slotSvc, scheduleSvc := newTestSlotService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "10:00")}, nil)

	slots, err := slotSvc.GenerateSlots(cfg, models.Date{Year: 2025, Month: time.December, Day: 1}, nil)
	require.NoError(t, err)

	slots = slotSvc.MarkSelected(slots, "2025-12-01T09:15")
	selected := 0
	for _, slot := range slots {
		if slot.IsSelected {
			selected++
			assert.Equal(t, "2025-12-01T09:15", slot.ID)
		}
	}
	assert.Equal(t, 1, selected)

	// Re-selecting a different slot moves the flag.
	slots = slotSvc.MarkSelected(slots, "2025-12-01T09:30")
	for _, slot := range slots {
		assert.Equal(t, slot.ID == "2025-12-01T09:30", slot.IsSelected)
	}
}

func TestExportSheetShape(t *testing.T) {
	slotSvc, scheduleSvc := newTestSlotService(t)
	cfg := testConfig(t, scheduleSvc, []dto.WeeklyHoursRecord{weekdayRecord(1, "09:00", "10:00")}, nil)
	date := models.Date{Year: 2025, Month: time.December, Day: 1}

	slots, err := slotSvc.GenerateSlots(cfg, date, nil)
	require.NoError(t, err)

	sheet := slotSvc.ExportSheet(date, "America/New_York", slots)
	assert.Equal(t, "2025-12-01", sheet.Date)
	assert.Equal(t, "America/New_York", sheet.Timezone)
	require.Len(t, sheet.Rows, 4)
	assert.Equal(t, "2025-12-01T09:00", sheet.Rows[0].ID)
	assert.Equal(t, "9:00 AM", sheet.Rows[0].Label)
	assert.True(t, sheet.Rows[0].Available)
}
