package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
)

const channelSettingColumns = `id, user_id, channel, enabled, priority, config, created_at, updated_at`

type channelSettingRepository struct {
	db dbConn
}

func newChannelSettingRepo(db dbConn) contract.ChannelSettingRepo {
	return &channelSettingRepository{db: db}
}

func scanChannelSetting(row rowScanner) (*entity.ChannelSetting, error) {
	setting := &entity.ChannelSetting{}
	var configJSON string
	err := row.Scan(
		&setting.ID,
		&setting.UserID,
		&setting.Channel,
		&setting.Enabled,
		&setting.Priority,
		&configJSON,
		&setting.CreatedAt,
		&setting.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Convert JSON to config map
	if err := json.Unmarshal([]byte(configJSON), &setting.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if setting.Config == nil {
		setting.Config = map[string]any{}
	}

	return setting, nil
}

func marshalConfig(config map[string]any) (string, error) {
	if config == nil {
		config = map[string]any{}
	}
	configJSON, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(configJSON), nil
}

func (r *channelSettingRepository) Create(ctx context.Context, setting *entity.ChannelSetting) error {
	query := `
		INSERT INTO channel_settings (user_id, channel, enabled, priority, config, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	configJSON, err := marshalConfig(setting.Config)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		setting.UserID,
		setting.Channel,
		boolToInt(setting.Enabled),
		setting.Priority,
		configJSON,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create channel setting: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	setting.ID = id
	setting.CreatedAt = now
	setting.UpdatedAt = now
	return nil
}

func (r *channelSettingRepository) GetByID(ctx context.Context, id, userID int64) (*entity.ChannelSetting, error) {
	query := `SELECT ` + channelSettingColumns + ` FROM channel_settings WHERE id = ? AND user_id = ?`

	return r.get(ctx, query, id, userID)
}

func (r *channelSettingRepository) GetByUserAndChannel(ctx context.Context, userID int64, channel string) (*entity.ChannelSetting, error) {
	query := `
		SELECT ` + channelSettingColumns + `
		FROM channel_settings
		WHERE user_id = ? AND channel = ?
		ORDER BY id
		LIMIT 1
	`

	return r.get(ctx, query, userID, channel)
}

func (r *channelSettingRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.ChannelSetting, error) {
	query := `
		SELECT ` + channelSettingColumns + `
		FROM channel_settings
		WHERE user_id = ?
		ORDER BY priority, id
	`

	return r.list(ctx, query, userID)
}

// ListEnabledByUser returns enabled settings, most preferred first.
func (r *channelSettingRepository) ListEnabledByUser(ctx context.Context, userID int64) ([]*entity.ChannelSetting, error) {
	query := `
		SELECT ` + channelSettingColumns + `
		FROM channel_settings
		WHERE user_id = ? AND enabled = 1
		ORDER BY priority, id
	`

	return r.list(ctx, query, userID)
}

func (r *channelSettingRepository) Update(ctx context.Context, setting *entity.ChannelSetting) error {
	query := `
		UPDATE channel_settings SET
			enabled = ?,
			priority = ?,
			config = ?,
			updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	configJSON, err := marshalConfig(setting.Config)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, query,
		boolToInt(setting.Enabled),
		setting.Priority,
		configJSON,
		now,
		setting.ID,
		setting.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update channel setting: %w", err)
	}

	setting.UpdatedAt = now
	return nil
}

func (r *channelSettingRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	query := `DELETE FROM channel_settings WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete channel setting: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *channelSettingRepository) get(ctx context.Context, query string, args ...any) (*entity.ChannelSetting, error) {
	setting, err := scanChannelSetting(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel setting: %w", err)
	}

	return setting, nil
}

func (r *channelSettingRepository) list(ctx context.Context, query string, args ...any) ([]*entity.ChannelSetting, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel settings: %w", err)
	}
	defer rows.Close()

	var settings []*entity.ChannelSetting
	for rows.Next() {
		setting, err := scanChannelSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel setting: %w", err)
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channel settings: %w", err)
	}

	return settings, nil
}
