package models

import "time"

// StoreHours is a persisted weekly-hours row. Weekday uses 0=Sunday..6=Saturday.
type StoreHours struct {
	ID        string    `db:"id" json:"id"`
	Weekday   int       `db:"weekday" json:"weekday"`
	OpenTime  string    `db:"open_time" json:"open_time"`
	CloseTime string    `db:"close_time" json:"close_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StoreOverride is a persisted date-specific exception row. The date carries
// an explicit year; open/close are null for closed dates.
type StoreOverride struct {
	ID        string    `db:"id" json:"id"`
	Year      int       `db:"year" json:"year"`
	Month     int       `db:"month" json:"month"`
	Day       int       `db:"day" json:"day"`
	IsOpen    bool      `db:"is_open" json:"is_open"`
	OpenTime  *string   `db:"open_time" json:"open_time,omitempty"`
	CloseTime *string   `db:"close_time" json:"close_time,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
