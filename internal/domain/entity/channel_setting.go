package entity

import "time"

// ChannelSetting is a user's delivery configuration for one channel.
// Lower Priority values are attempted first.
type ChannelSetting struct {
	ID        int64          `json:"id" db:"id"`
	UserID    int64          `json:"user_id" db:"user_id"`
	Channel   string         `json:"channel" db:"channel"`
	Enabled   bool           `json:"enabled" db:"enabled"`
	Priority  int            `json:"priority" db:"priority"`
	Config    map[string]any `json:"config" db:"config"` // JSON in storage
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}
