package contract

import (
	"context"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Ping(ctx context.Context) error
	User() UserRepo
	Schedule() ScheduleRepo
	ChannelSetting() ChannelSettingRepo
	Notification() NotificationRepo
}

// UserRepo defines the contract for user repository
type UserRepo interface {
	Upsert(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Count(ctx context.Context) (int, error)
}

// ScheduleRepo defines the contract for schedule repository.
// All day/time values are UTC.
type ScheduleRepo interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	GetByID(ctx context.Context, id, userID int64) (*entity.Schedule, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Schedule, error)
	Update(ctx context.Context, schedule *entity.Schedule) error
	Delete(ctx context.Context, id, userID int64) (bool, error)
	FindDuplicate(ctx context.Context, key entity.ScheduleKey) (*entity.Schedule, error)
	ListDue(ctx context.Context, dayOfWeek int, notificationTime string) ([]*entity.Schedule, error)
}

// ChannelSettingRepo defines the contract for channel setting repository
type ChannelSettingRepo interface {
	Create(ctx context.Context, setting *entity.ChannelSetting) error
	GetByID(ctx context.Context, id, userID int64) (*entity.ChannelSetting, error)
	GetByUserAndChannel(ctx context.Context, userID int64, channel string) (*entity.ChannelSetting, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.ChannelSetting, error)
	ListEnabledByUser(ctx context.Context, userID int64) ([]*entity.ChannelSetting, error)
	Update(ctx context.Context, setting *entity.ChannelSetting) error
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// NotificationRepo defines the contract for the notification history
type NotificationRepo interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id int64) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Notification, error)
	ListRetryable(ctx context.Context, maxTries, limit int) ([]*entity.Notification, error)
	UpdateStatus(ctx context.Context, id int64, status domain.NotificationStatus, attemptCount int, lastError string) error
	AbandonExhausted(ctx context.Context, maxTries int) (int64, error)
}
