package entity

import "time"

// Schedule is a weekly reminder. DayOfWeek and NotificationTime are always UTC.
type Schedule struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	DayOfWeek        int       `json:"day_of_week" db:"day_of_week"`             // 0=Monday, UTC
	NotificationTime string    `json:"notification_time" db:"notification_time"` // HH:MM, UTC
	Occasion         string    `json:"occasion" db:"occasion"`
	Enabled          bool      `json:"enabled" db:"enabled"`
	NotifyDayBefore  bool      `json:"notify_day_before" db:"notify_day_before"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// ScheduleKey is the tuple used to reject duplicate schedules on creation.
type ScheduleKey struct {
	UserID           int64
	DayOfWeek        int
	NotificationTime string
	Occasion         string
	NotifyDayBefore  bool
}
