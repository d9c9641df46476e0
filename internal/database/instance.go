package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db                 *DB
	userRepo           contract.UserRepo
	scheduleRepo       contract.ScheduleRepo
	channelSettingRepo contract.ChannelSettingRepo
	notificationRepo   contract.NotificationRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		userRepo:           newUserRepo(db),
		scheduleRepo:       newScheduleRepo(db),
		channelSettingRepo: newChannelSettingRepo(db),
		notificationRepo:   newNotificationRepo(db),
	}
}

func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

func (i *instance) Schedule() contract.ScheduleRepo {
	return i.scheduleRepo
}

func (i *instance) ChannelSetting() contract.ChannelSettingRepo {
	return i.channelSettingRepo
}

func (i *instance) Notification() contract.NotificationRepo {
	return i.notificationRepo
}

// Ping checks the database connection. Inside a transaction it is a no-op.
func (i *instance) Ping(ctx context.Context) error {
	if i.db == nil {
		return nil
	}
	return i.db.conn.PingContext(ctx)
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
