package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/internal/models"
	"github.com/harborlane/storefront-api/pkg/export"
)

// SlotService produces the bookable time grid for a calendar date.
type SlotService struct {
	schedule *ScheduleService
	interval time.Duration
	logger   *zap.Logger
}

// NewSlotService instantiates SlotService. A non-positive interval falls back
// to the 15-minute default.
func NewSlotService(schedule *ScheduleService, interval time.Duration, logger *zap.Logger) *SlotService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlotService{schedule: schedule, interval: interval, logger: logger}
}

// GenerateSlots emits one slot per interval starting at the day's open time,
// strictly before the close time. A closed date yields an empty slice, not an
// error. Slot start times are schedule-local wall clock; display labels are
// re-rendered in displayLoc, which may differ from the schedule timezone.
// Output is deterministic for identical inputs.
func (s *SlotService) GenerateSlots(cfg *models.ScheduleConfig, date models.Date, displayLoc *time.Location) ([]models.TimeSlot, error) {
	day, err := s.schedule.ResolveDay(cfg, date)
	if err != nil {
		return nil, err
	}
	if !day.IsOpen {
		return []models.TimeSlot{}, nil
	}
	if displayLoc == nil {
		displayLoc = cfg.Location()
	}

	step := int(s.interval / time.Minute)
	slots := make([]models.TimeSlot, 0, (day.Close.MinuteOfDay()-day.Open.MinuteOfDay())/step)
	for minute := day.Open.MinuteOfDay(); minute < day.Close.MinuteOfDay(); minute += step {
		start := models.WallClock{Hour: minute / 60, Minute: minute % 60}
		instant := date.At(start, cfg.Location())
		slots = append(slots, models.TimeSlot{
			ID:           models.SlotID(date, start),
			StartTime:    start.String(),
			DisplayLabel: instant.In(displayLoc).Format("3:04 PM"),
			IsAvailable:  true,
		})
	}
	return slots, nil
}

// MarkSelected returns the slot set with exactly the matching slot flagged
// selected. Unknown ids leave the set untouched.
func (s *SlotService) MarkSelected(slots []models.TimeSlot, selectedID string) []models.TimeSlot {
	for i := range slots {
		slots[i].IsSelected = slots[i].ID == selectedID
	}
	return slots
}

// ExportSheet shapes a day's slots into the sheet contract consumed by the
// CSV and PDF renderers.
func (s *SlotService) ExportSheet(date models.Date, timezone string, slots []models.TimeSlot) export.SlotSheet {
	rows := make([]export.SlotRow, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, export.SlotRow{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			Label:     slot.DisplayLabel,
			Available: slot.IsAvailable,
		})
	}
	return export.SlotSheet{Date: date.ISO(), Timezone: timezone, Rows: rows}
}
