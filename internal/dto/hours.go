package dto

// WeeklyHoursRecord mirrors the upstream weekly-hours feed entry. Entries
// with IsOpen=false are dropped before building the schedule snapshot.
type WeeklyHoursRecord struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime" validate:"required_if=IsOpen true"`
	EndTime   string `json:"endTime" validate:"required_if=IsOpen true"`
}

// OverrideRecord mirrors the upstream override feed entry. Year is explicit
// and required; day+month alone cannot name a calendar date.
type OverrideRecord struct {
	Year      int     `json:"year" validate:"required,min=2000,max=2200"`
	Month     int     `json:"month" validate:"required,min=1,max=12"`
	Day       int     `json:"day" validate:"required,min=1,max=31"`
	IsOpen    bool    `json:"isOpen"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// ReplaceHoursRequest swaps the whole weekly table in one call.
type ReplaceHoursRequest struct {
	Items []WeeklyHoursRecord `json:"items" validate:"required,min=1,max=7,dive"`
}
