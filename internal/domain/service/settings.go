package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/pkg/models"
	"go.uber.org/zap"
)

type settingsService struct {
	dm         contract.DataManager
	channels   contract.ChannelRegistry
	dispatcher contract.Dispatcher
	ntfy       models.NtfyDefaults
	log        *zap.Logger
}

func newSettingsService(
	dm contract.DataManager,
	channels contract.ChannelRegistry,
	dispatcher contract.Dispatcher,
	ntfy models.NtfyDefaults,
	log *zap.Logger,
) *settingsService {
	return &settingsService{
		dm:         dm,
		channels:   channels,
		dispatcher: dispatcher,
		ntfy:       ntfy,
		log:        log,
	}
}

// List returns the user's settings ordered by priority.
func (s *settingsService) List(ctx context.Context, userID int64) ([]*entity.ChannelSetting, error) {
	settings, err := s.dm.ChannelSetting().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Create(ctx context.Context, userID int64, in models.ChannelSettingInput) (*entity.ChannelSetting, error) {
	if err := s.validate(in.Channel, in.Config); err != nil {
		return nil, err
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	setting := &entity.ChannelSetting{
		UserID:   userID,
		Channel:  in.Channel,
		Enabled:  enabled,
		Priority: in.Priority,
		Config:   in.Config,
	}
	if setting.Config == nil {
		setting.Config = map[string]any{}
	}

	if err := s.dm.ChannelSetting().Create(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to create channel setting: %w", err)
	}

	s.log.Info("channel setting created",
		zap.Int64("user_id", userID),
		zap.Int64("setting_id", setting.ID),
		zap.String("channel", setting.Channel),
	)
	return setting, nil
}

func (s *settingsService) Get(ctx context.Context, userID, id int64) (*entity.ChannelSetting, error) {
	return s.get(ctx, s.dm, userID, id)
}

// Update changes enabled, priority and config. The channel itself is
// immutable, so a new config is validated against the stored channel.
func (s *settingsService) Update(ctx context.Context, userID, id int64, in models.ChannelSettingUpdate) (*entity.ChannelSetting, error) {
	var setting *entity.ChannelSetting

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		setting, err = s.get(ctx, tx, userID, id)
		if err != nil {
			return err
		}

		if in.Config != nil {
			if err := s.validate(setting.Channel, in.Config); err != nil {
				return err
			}
			setting.Config = in.Config
		}
		if in.Enabled != nil {
			setting.Enabled = *in.Enabled
		}
		if in.Priority != nil {
			setting.Priority = *in.Priority
		}

		return tx.ChannelSetting().Update(ctx, setting)
	})
	if err != nil {
		return nil, err
	}

	return setting, nil
}

func (s *settingsService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.dm.ChannelSetting().Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete channel setting: %w", err)
	}
	if !deleted {
		return fmt.Errorf("channel setting %d: %w", id, domain.ErrNotFound)
	}

	s.log.Info("channel setting deleted", zap.Int64("user_id", userID), zap.Int64("setting_id", id))
	return nil
}

// RegisterPushToken creates or refreshes the user's single push setting.
func (s *settingsService) RegisterPushToken(ctx context.Context, userID int64, token string) (*entity.ChannelSetting, error) {
	config := map[string]any{"push_token": token}
	if err := s.validate(domain.ChannelExpoPush, config); err != nil {
		return nil, domain.NewValidationError("push_token", "invalid push token format")
	}

	var setting *entity.ChannelSetting
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.ChannelSetting().GetByUserAndChannel(ctx, userID, domain.ChannelExpoPush)
		if err != nil {
			return fmt.Errorf("failed to look up push setting: %w", err)
		}

		if existing != nil {
			existing.Config = config
			existing.Enabled = true
			setting = existing
			return tx.ChannelSetting().Update(ctx, existing)
		}

		setting = &entity.ChannelSetting{
			UserID:   userID,
			Channel:  domain.ChannelExpoPush,
			Enabled:  true,
			Priority: domain.PushChannelPriority,
			Config:   config,
		}
		return tx.ChannelSetting().Create(ctx, setting)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("push token registered", zap.Int64("user_id", userID), zap.Int64("setting_id", setting.ID))
	return setting, nil
}

// TestSend performs exactly one send through the setting. It never writes
// history and never schedules a retry.
func (s *settingsService) TestSend(ctx context.Context, userID, id int64) (bool, string) {
	setting, err := s.get(ctx, s.dm, userID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return false, "Setting not found"
	}
	if err != nil {
		s.log.Error("test send lookup failed", zap.Int64("setting_id", id), zap.Error(err))
		return false, "Could not load setting"
	}

	msg := contract.Message{
		Title: "Test notification",
		Body:  "Your " + setting.Channel + " channel is set up correctly.",
	}

	if err := s.dispatcher.SendOne(ctx, setting, msg); err != nil {
		s.log.Info("test send failed",
			zap.Int64("setting_id", id),
			zap.String("channel", setting.Channel),
			zap.Error(err),
		)
		return false, err.Error()
	}

	return true, "Test notification sent via " + setting.Channel
}

func (s *settingsService) NtfyDefaults() models.NtfyDefaults {
	return s.ntfy
}

func (s *settingsService) validate(channel string, config map[string]any) error {
	ch, err := s.channels.Get(channel)
	if err != nil {
		return err
	}
	return ch.Validate(config)
}

func (s *settingsService) get(ctx context.Context, dm contract.DataManager, userID, id int64) (*entity.ChannelSetting, error) {
	setting, err := dm.ChannelSetting().GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel setting: %w", err)
	}
	if setting == nil {
		return nil, fmt.Errorf("channel setting %d: %w", id, domain.ErrNotFound)
	}
	return setting, nil
}
