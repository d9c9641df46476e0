package contract

import (
	"context"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/pkg/models"
)

// UserService keeps the local copy of a user's zone in step with the caller.
type UserService interface {
	SyncTimezone(ctx context.Context, userID int64, timezone string) error
}

type ScheduleService interface {
	List(ctx context.Context, userID int64) ([]models.Schedule, error)
	Create(ctx context.Context, userID int64, in models.ScheduleInput) (models.Schedule, error)
	Get(ctx context.Context, userID, id int64) (models.Schedule, error)
	Update(ctx context.Context, userID, id int64, in models.ScheduleUpdate) (models.Schedule, error)
	Delete(ctx context.Context, userID, id int64) error
}

type SettingsService interface {
	List(ctx context.Context, userID int64) ([]*entity.ChannelSetting, error)
	Create(ctx context.Context, userID int64, in models.ChannelSettingInput) (*entity.ChannelSetting, error)
	Get(ctx context.Context, userID, id int64) (*entity.ChannelSetting, error)
	Update(ctx context.Context, userID, id int64, in models.ChannelSettingUpdate) (*entity.ChannelSetting, error)
	Delete(ctx context.Context, userID, id int64) error
	RegisterPushToken(ctx context.Context, userID int64, token string) (*entity.ChannelSetting, error)
	TestSend(ctx context.Context, userID, id int64) (bool, string)
	NtfyDefaults() models.NtfyDefaults
}

type HistoryService interface {
	List(ctx context.Context, userID int64, limit, offset int) (models.HistoryPage, error)
}

// DispatchJob asks for userID to be reminded about occasion on targetDate.
type DispatchJob struct {
	ScheduleID      int64
	UserID          int64
	Occasion        string
	TargetDate      time.Time
	NotifyDayBefore bool
}

// DispatchOutcome summarises one dispatch.
type DispatchOutcome struct {
	Attempted int
	Sent      int
	Failed    int
}

type Dispatcher interface {
	Dispatch(ctx context.Context, job DispatchJob) (DispatchOutcome, error)
	SendOne(ctx context.Context, setting *entity.ChannelSetting, msg Message) error
}

// JobQueue accepts work for asynchronous execution.
type JobQueue interface {
	Submit(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

// TickLease lets only one process run a given poller bucket.
type TickLease interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// ProfileRefresher rebuilds per-user learning profiles. It lives outside the
// engine and only shares the job substrate.
type ProfileRefresher interface {
	RefreshProfiles(ctx context.Context) (int, error)
}
