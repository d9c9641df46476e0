// Package models holds the request and response bodies of the HTTP surface.
// Schedule times here are always in the user's local zone.
package models

import (
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
)

type ScheduleInput struct {
	DayOfWeek        int    `json:"day_of_week"`       // local, 0=Monday
	NotificationTime string `json:"notification_time"` // local HH:MM
	Occasion         string `json:"occasion"`
	Enabled          *bool  `json:"enabled,omitempty"`
	NotifyDayBefore  bool   `json:"notify_day_before"`
}

type ScheduleUpdate struct {
	DayOfWeek        *int    `json:"day_of_week,omitempty"`
	NotificationTime *string `json:"notification_time,omitempty"`
	Occasion         *string `json:"occasion,omitempty"`
	Enabled          *bool   `json:"enabled,omitempty"`
	NotifyDayBefore  *bool   `json:"notify_day_before,omitempty"`
}

type Schedule struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	DayOfWeek        int       `json:"day_of_week"`
	NotificationTime string    `json:"notification_time"`
	Occasion         string    `json:"occasion"`
	Enabled          bool      `json:"enabled"`
	NotifyDayBefore  bool      `json:"notify_day_before"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ChannelSettingInput struct {
	Channel  string         `json:"channel"`
	Enabled  *bool          `json:"enabled,omitempty"`
	Priority int            `json:"priority"`
	Config   map[string]any `json:"config"`
}

type ChannelSettingUpdate struct {
	Enabled  *bool          `json:"enabled,omitempty"`
	Priority *int           `json:"priority,omitempty"`
	Config   map[string]any `json:"config,omitempty"`
}

type PushTokenRequest struct {
	PushToken string `json:"push_token"`
}

type TestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type NtfyDefaults struct {
	Server   string `json:"server"`
	HasToken bool   `json:"has_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HistoryPage is the response of the history endpoint.
type HistoryPage struct {
	Items  []*entity.Notification `json:"items"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}
