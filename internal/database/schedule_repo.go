package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
)

const scheduleColumns = `id, user_id, day_of_week, notification_time, occasion, enabled, notify_day_before, created_at, updated_at`

type scheduleRepository struct {
	db dbConn
}

func newScheduleRepo(db dbConn) contract.ScheduleRepo {
	return &scheduleRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*entity.Schedule, error) {
	schedule := &entity.Schedule{}
	err := row.Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.DayOfWeek,
		&schedule.NotificationTime,
		&schedule.Occasion,
		&schedule.Enabled,
		&schedule.NotifyDayBefore,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (user_id, day_of_week, notification_time, occasion, enabled, notify_day_before, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		schedule.UserID,
		schedule.DayOfWeek,
		schedule.NotificationTime,
		schedule.Occasion,
		boolToInt(schedule.Enabled),
		boolToInt(schedule.NotifyDayBefore),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	schedule.ID = id
	schedule.CreatedAt = now
	schedule.UpdatedAt = now
	return nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id, userID int64) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ? AND user_id = ?`

	schedule, err := scanSchedule(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	return schedule, nil
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE user_id = ? ORDER BY id`

	return r.list(ctx, query, userID)
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		UPDATE schedules SET
			day_of_week = ?,
			notification_time = ?,
			occasion = ?,
			enabled = ?,
			notify_day_before = ?,
			updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		schedule.DayOfWeek,
		schedule.NotificationTime,
		schedule.Occasion,
		boolToInt(schedule.Enabled),
		boolToInt(schedule.NotifyDayBefore),
		now,
		schedule.ID,
		schedule.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	schedule.UpdatedAt = now
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	query := `DELETE FROM schedules WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *scheduleRepository) FindDuplicate(ctx context.Context, key entity.ScheduleKey) (*entity.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE user_id = ?
			AND day_of_week = ?
			AND notification_time = ?
			AND occasion = ?
			AND notify_day_before = ?
		LIMIT 1
	`

	schedule, err := scanSchedule(r.db.QueryRowContext(ctx, query,
		key.UserID,
		key.DayOfWeek,
		key.NotificationTime,
		key.Occasion,
		boolToInt(key.NotifyDayBefore),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicate schedule: %w", err)
	}

	return schedule, nil
}

// ListDue returns enabled schedules for one UTC minute bucket.
func (r *scheduleRepository) ListDue(ctx context.Context, dayOfWeek int, notificationTime string) ([]*entity.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE enabled = 1 AND day_of_week = ? AND notification_time = ?
		ORDER BY id
	`

	return r.list(ctx, query, dayOfWeek, notificationTime)
}

func (r *scheduleRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*entity.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}

	return schedules, nil
}
