package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
)

const notificationColumns = `id, user_id, channel, channel_setting_id, occasion, target_date, title, body,
	status, attempt_count, last_error, created_at, updated_at`

type notificationRepository struct {
	db dbConn
}

func newNotificationRepo(db dbConn) contract.NotificationRepo {
	return &notificationRepository{db: db}
}

func scanNotification(row rowScanner) (*entity.Notification, error) {
	n := &entity.Notification{}
	var status string
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Channel,
		&n.ChannelSettingID,
		&n.Occasion,
		&n.TargetDate,
		&n.Title,
		&n.Body,
		&status,
		&n.AttemptCount,
		&n.LastError,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	n.Status = domain.NotificationStatus(status)
	return n, nil
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, channel, channel_setting_id, occasion, target_date, title, body,
			status, attempt_count, last_error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := n.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}
	result, err := r.db.ExecContext(ctx, query,
		n.UserID,
		n.Channel,
		n.ChannelSettingID,
		n.Occasion,
		n.TargetDate,
		n.Title,
		n.Body,
		string(n.Status),
		n.AttemptCount,
		n.LastError,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	n.ID = id
	n.CreatedAt = now
	n.UpdatedAt = now
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = ?`

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListByUser returns a page of the user's history, newest first.
func (r *notificationRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	return r.list(ctx, query, userID, limit, offset)
}

// ListRetryable returns failed records that still have attempts left, oldest first.
func (r *notificationRepository) ListRetryable(ctx context.Context, maxTries, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE status IN (?, ?) AND attempt_count < ?
		ORDER BY created_at, id
		LIMIT ?
	`

	return r.list(ctx, query, string(domain.StatusFailed), string(domain.StatusRetrying), maxTries, limit)
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, id int64, status domain.NotificationStatus, attemptCount int, lastError string) error {
	query := `
		UPDATE notifications SET
			status = ?,
			attempt_count = ?,
			last_error = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, string(status), attemptCount, lastError, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// AbandonExhausted moves failed records that have no attempts left to
// abandoned. Such rows appear when the attempt limit is lowered.
func (r *notificationRepository) AbandonExhausted(ctx context.Context, maxTries int) (int64, error) {
	query := `
		UPDATE notifications SET
			status = ?,
			last_error = CASE WHEN last_error = '' THEN ? ELSE last_error END,
			updated_at = ?
		WHERE status IN (?, ?) AND attempt_count >= ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(domain.StatusAbandoned), "max tries reached", time.Now().UTC(),
		string(domain.StatusFailed), string(domain.StatusRetrying), maxTries,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to abandon exhausted notifications: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

func (r *notificationRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}
