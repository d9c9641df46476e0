package entity

import (
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
)

// Notification is one history record: a delivery attempt through one channel
// and its current outcome.
type Notification struct {
	ID               int64                     `json:"id" db:"id"`
	UserID           int64                     `json:"user_id" db:"user_id"`
	Channel          string                    `json:"channel" db:"channel"`
	ChannelSettingID int64                     `json:"channel_setting_id" db:"channel_setting_id"`
	Occasion         string                    `json:"occasion" db:"occasion"`
	TargetDate       string                    `json:"target_date" db:"target_date"` // YYYY-MM-DD
	Title            string                    `json:"title" db:"title"`
	Body             string                    `json:"body" db:"body"`
	Status           domain.NotificationStatus `json:"status" db:"status"`
	AttemptCount     int                       `json:"attempt_count" db:"attempt_count"`
	LastError        string                    `json:"last_error,omitempty" db:"last_error"`
	CreatedAt        time.Time                 `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at" db:"updated_at"`
}
