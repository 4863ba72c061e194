package dto

import "time"

// StatusResponse answers "is the store open right now" plus the greeting
// banner for the active display timezone.
type StatusResponse struct {
	IsOpen         bool   `json:"is_open"`
	Date           string `json:"date"`
	OpenTime       string `json:"open_time,omitempty"`
	CloseTime      string `json:"close_time,omitempty"`
	StoreTimezone  string `json:"store_timezone"`
	ActiveTimezone string `json:"active_timezone"`
	LocalTime      string `json:"local_time"`
	Greeting       string `json:"greeting"`
	AlternateCity  string `json:"alternate_city"`
}

// ResolvedDayResponse is the open/closed decision for one calendar date.
type ResolvedDayResponse struct {
	Date      string `json:"date"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

// NextOpeningResponse describes the nearest future open window and the
// derived reminder instant. Schedulable is false when the reminder would
// fire less than one minute from now.
type NextOpeningResponse struct {
	Date        string    `json:"date"`
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
	ReminderAt  time.Time `json:"reminder_at"`
	Schedulable bool      `json:"schedulable"`
}

// PreferenceRequest updates the persisted viewer timezone toggle.
type PreferenceRequest struct {
	UseAlternateTimezone bool `json:"use_alternate_timezone"`
}

// PreferenceResponse echoes the persisted viewer timezone toggle.
type PreferenceResponse struct {
	DeviceID             string `json:"device_id"`
	UseAlternateTimezone bool   `json:"use_alternate_timezone"`
}

// LoginRequest carries the admin credential.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
