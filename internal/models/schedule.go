package models

import (
	"fmt"
	"sort"
	"time"

	appErrors "github.com/harborlane/storefront-api/pkg/errors"
)

// WallClock is a timezone-naive time of day at minute precision.
type WallClock struct {
	Hour   int
	Minute int
}

// ParseWallClock parses a strict 24-hour "HH:MM" string. Single-digit hours
// and trailing text are rejected.
func ParseWallClock(raw string) (WallClock, error) {
	if len(raw) != len("15:04") {
		return WallClock{}, fmt.Errorf("parse wall clock %q: expected HH:MM", raw)
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return WallClock{}, fmt.Errorf("parse wall clock %q: %w", raw, err)
	}
	return WallClock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String renders the 24-hour "HH:MM" form.
func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

// MinuteOfDay returns minutes elapsed since midnight.
func (w WallClock) MinuteOfDay() int {
	return w.Hour*60 + w.Minute
}

// Before reports whether w is strictly earlier in the day than other.
func (w WallClock) Before(other WallClock) bool {
	return w.MinuteOfDay() < other.MinuteOfDay()
}

// Date is a timezone-naive calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ISO renders the "YYYY-MM-DD" form.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Weekday returns the day of week for the date.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddDays returns the date n days later, carrying across month and year.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// At combines the date with a wall-clock time in loc, producing an absolute
// instant.
func (d Date) At(wc WallClock, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, wc.Hour, wc.Minute, 0, 0, loc)
}

// WeeklyHours is one recurring open window attached to a day of week.
// A weekday with no entry is closed; overnight spans are not supported.
type WeeklyHours struct {
	Weekday time.Weekday
	Open    WallClock
	Close   WallClock
}

// DateOverride replaces the weekly rule for one specific calendar date.
// Open and Close are set only when IsOpen is true.
type DateOverride struct {
	Date   Date
	IsOpen bool
	Open   *WallClock
	Close  *WallClock
}

// ResolvedDay is the open/closed decision plus effective window for one
// concrete calendar date, after override precedence.
type ResolvedDay struct {
	Date   Date      `json:"date"`
	IsOpen bool      `json:"is_open"`
	Open   WallClock `json:"-"`
	Close  WallClock `json:"-"`
}

// Opening is a future open window found by the next-opening scan.
type Opening struct {
	Date  Date
	Open  WallClock
	Close WallClock
}

// ScheduleConfig is an immutable snapshot of the store schedule: timezone,
// weekly recurring hours and date overrides. Construct via NewScheduleConfig
// or DefaultScheduleConfig; callers never mutate a snapshot, a refresh builds
// a replacement instead.
type ScheduleConfig struct {
	timezone  string
	location  *time.Location
	weekly    map[time.Weekday]WeeklyHours
	overrides map[Date]DateOverride
}

// NewScheduleConfig validates and assembles a schedule snapshot.
// Weekly entries with open >= close or duplicate weekdays fail with
// INVALID_SCHEDULE; overrides declared open without a complete window fail
// with INVALID_OVERRIDE. Duplicate override dates keep the last record.
func NewScheduleConfig(timezone string, loc *time.Location, weekly []WeeklyHours, overrides []DateOverride) (*ScheduleConfig, error) {
	if loc == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidTimezone, fmt.Sprintf("unresolved timezone %q", timezone))
	}

	weeklySet := make(map[time.Weekday]WeeklyHours, len(weekly))
	for _, entry := range weekly {
		if _, exists := weeklySet[entry.Weekday]; exists {
			return nil, appErrors.Clone(appErrors.ErrInvalidSchedule, fmt.Sprintf("duplicate weekly entry for %s", entry.Weekday))
		}
		if !entry.Open.Before(entry.Close) {
			return nil, appErrors.Clone(appErrors.ErrInvalidSchedule, fmt.Sprintf("%s opens at %s but closes at %s", entry.Weekday, entry.Open, entry.Close))
		}
		weeklySet[entry.Weekday] = entry
	}

	overrideSet := make(map[Date]DateOverride, len(overrides))
	for _, ov := range overrides {
		if ov.IsOpen {
			if ov.Open == nil || ov.Close == nil {
				return nil, appErrors.Clone(appErrors.ErrInvalidOverride, fmt.Sprintf("override %s is open without a time window", ov.Date.ISO()))
			}
			if !ov.Open.Before(*ov.Close) {
				return nil, appErrors.Clone(appErrors.ErrInvalidOverride, fmt.Sprintf("override %s opens at %s but closes at %s", ov.Date.ISO(), ov.Open, ov.Close))
			}
		}
		overrideSet[ov.Date] = ov
	}

	return &ScheduleConfig{
		timezone:  timezone,
		location:  loc,
		weekly:    weeklySet,
		overrides: overrideSet,
	}, nil
}

// DefaultScheduleConfig is the hardcoded fallback used whenever loading or
// building the stored schedule fails: Mon-Fri 09:00-17:00, Sat 10:00-16:00,
// Sun 10:00-18:00, America/New_York.
func DefaultScheduleConfig() *ScheduleConfig {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.UTC
	}

	weekly := []WeeklyHours{
		{Weekday: time.Sunday, Open: WallClock{Hour: 10}, Close: WallClock{Hour: 18}},
		{Weekday: time.Saturday, Open: WallClock{Hour: 10}, Close: WallClock{Hour: 16}},
	}
	for day := time.Monday; day <= time.Friday; day++ {
		weekly = append(weekly, WeeklyHours{Weekday: day, Open: WallClock{Hour: 9}, Close: WallClock{Hour: 17}})
	}

	cfg, err := NewScheduleConfig("America/New_York", loc, weekly, nil)
	if err != nil {
		// The constant above always validates; reaching here is a bug.
		panic(err)
	}
	return cfg
}

// Timezone returns the schedule's IANA identifier.
func (c *ScheduleConfig) Timezone() string {
	return c.timezone
}

// Location returns the resolved schedule timezone.
func (c *ScheduleConfig) Location() *time.Location {
	return c.location
}

// WeeklyFor looks up the recurring hours for a weekday.
func (c *ScheduleConfig) WeeklyFor(day time.Weekday) (WeeklyHours, bool) {
	entry, ok := c.weekly[day]
	return entry, ok
}

// OverrideFor looks up the override for a date.
func (c *ScheduleConfig) OverrideFor(date Date) (DateOverride, bool) {
	ov, ok := c.overrides[date]
	return ov, ok
}

// WeeklyEntries returns the weekly table ordered Sunday through Saturday.
func (c *ScheduleConfig) WeeklyEntries() []WeeklyHours {
	entries := make([]WeeklyHours, 0, len(c.weekly))
	for _, entry := range c.weekly {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Weekday < entries[j].Weekday })
	return entries
}

// OverrideEntries returns the overrides ordered by date.
func (c *ScheduleConfig) OverrideEntries() []DateOverride {
	entries := make([]DateOverride, 0, len(c.overrides))
	for _, ov := range c.overrides {
		entries = append(entries, ov)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.ISO() < entries[j].Date.ISO() })
	return entries
}
