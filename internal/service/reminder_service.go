package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/internal/models"
)

// nextOpeningHorizon bounds the forward scan: one full week covers every
// weekly recurrence, and the bound guarantees termination when every day in
// range is overridden closed.
const nextOpeningHorizon = 7

// ReminderService finds the nearest future open window and derives the
// pre-opening reminder instant from it.
type ReminderService struct {
	schedule *ScheduleService
	lead     time.Duration
	logger   *zap.Logger
}

// NewReminderService instantiates ReminderService. A non-positive lead falls
// back to one hour.
func NewReminderService(schedule *ScheduleService, lead time.Duration, logger *zap.Logger) *ReminderService {
	if lead <= 0 {
		lead = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderService{schedule: schedule, lead: lead, logger: logger}
}

// NextOpening scans forward from the given instant for the next open window.
// The instant's own date counts only while its open time is still strictly
// ahead of the wall clock. A nil result means no open day within the next
// seven days, which is a valid outcome, not an error.
func (r *ReminderService) NextOpening(cfg *models.ScheduleConfig, from time.Time) (*models.Opening, error) {
	local := from.In(cfg.Location())
	today := models.DateOf(local)

	day, err := r.schedule.ResolveDay(cfg, today)
	if err != nil {
		return nil, err
	}
	nowMinute := local.Hour()*60 + local.Minute()
	if day.IsOpen && day.Open.MinuteOfDay() > nowMinute {
		return &models.Opening{Date: today, Open: day.Open, Close: day.Close}, nil
	}

	for ahead := 1; ahead <= nextOpeningHorizon; ahead++ {
		candidate := today.AddDays(ahead)
		day, err := r.schedule.ResolveDay(cfg, candidate)
		if err != nil {
			return nil, err
		}
		if day.IsOpen {
			return &models.Opening{Date: candidate, Open: day.Open, Close: day.Close}, nil
		}
	}

	return nil, nil
}

// ReminderTime converts the opening to an absolute instant in the schedule
// timezone and subtracts the configured lead. Subtracting across midnight
// lands on the previous calendar day because the arithmetic happens on the
// instant, not the time of day.
func (r *ReminderService) ReminderTime(cfg *models.ScheduleConfig, opening models.Opening) time.Time {
	return opening.Date.At(opening.Open, cfg.Location()).Add(-r.lead)
}

// Schedulable applies the caller-side registration guard: a reminder must be
// at least one minute in the future to be worth scheduling.
func (r *ReminderService) Schedulable(reminderAt, now time.Time) bool {
	return reminderAt.Sub(now) >= time.Minute
}
