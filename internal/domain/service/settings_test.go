package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/diegoclair/wardrobe-notifier/internal/channel"
	"github.com/diegoclair/wardrobe-notifier/internal/config"
	"github.com/diegoclair/wardrobe-notifier/internal/database"
	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestSettingsService(m allMocks) *settingsService {
	return newSettingsService(
		m.mockDataManager,
		m.mockRegistry,
		m.mockDispatcher,
		models.NtfyDefaults{Server: "https://ntfy.sh", HasToken: true},
		zap.NewNop(),
	)
}

func Test_settingsService_Create(t *testing.T) {
	type args struct {
		userID int64
		in     models.ChannelSettingInput
	}
	tests := []struct {
		name      string
		buildMock func(mocks allMocks, args args)
		args      args
		wantErr   bool
		errMsg    string
	}{
		{
			name: "Should validate and persist the setting",
			args: args{
				userID: 1,
				in: models.ChannelSettingInput{
					Channel:  domain.ChannelNtfy,
					Priority: 2,
					Config:   map[string]any{"topic": "outfits"},
				},
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockRegistry.EXPECT().Get(domain.ChannelNtfy).Return(mocks.mockChannel, nil)
				mocks.mockChannel.EXPECT().Validate(args.in.Config).Return(nil)
				mocks.mockChannelSettingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *entity.ChannelSetting) error {
						assert.Equal(t, args.userID, s.UserID)
						assert.True(t, s.Enabled)
						assert.Equal(t, 2, s.Priority)
						s.ID = 7
						return nil
					})
			},
		},
		{
			name: "Should not persist an invalid config",
			args: args{
				userID: 1,
				in: models.ChannelSettingInput{
					Channel: domain.ChannelEmail,
					Config:  map[string]any{"address": "nope"},
				},
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockRegistry.EXPECT().Get(domain.ChannelEmail).Return(mocks.mockChannel, nil)
				mocks.mockChannel.EXPECT().Validate(args.in.Config).
					Return(domain.NewValidationError("config.address", "must be a valid email address"))
			},
			wantErr: true,
		},
		{
			name: "Should reject an unknown channel",
			args: args{
				userID: 1,
				in:     models.ChannelSettingInput{Channel: "fax"},
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockRegistry.EXPECT().Get("fax").
					Return(nil, domain.NewValidationError("channel", `unsupported channel "fax"`))
			},
			wantErr: true,
		},		{
			name: "Should wrap a repository failure",
			args: args{
				userID: 1,
				in: models.ChannelSettingInput{
					Channel: domain.ChannelNtfy,
					Config:  map[string]any{"topic": "outfits"},
				},
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockRegistry.EXPECT().Get(domain.ChannelNtfy).Return(mocks.mockChannel, nil)
				mocks.mockChannel.EXPECT().Validate(args.in.Config).Return(nil)
				mocks.mockChannelSettingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
			errMsg:  "failed to create channel setting: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			got, err := newTestSettingsService(m).Create(context.Background(), tt.args.userID, tt.args.in)
			if tt.errMsg != "" {
				assert.EqualError(t, err, tt.errMsg)
				assert.Nil(t, got)
				return
			}
			if tt.wantErr {
				assert.True(t, domain.IsValidation(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
		})
	}
}

func Test_settingsService_Update(t *testing.T) {
	t.Run("Should validate a new config against the stored channel", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		existing := &entity.ChannelSetting{ID: 3, UserID: 1, Channel: domain.ChannelMattermost, Enabled: true, Config: map[string]any{"webhook_url": "https://a"}}
		newConfig := map[string]any{"webhook_url": "https://b"}

		m.mockChannelSettingRepo.EXPECT().GetByID(gomock.Any(), int64(3), int64(1)).Return(existing, nil)
		m.mockRegistry.EXPECT().Get(domain.ChannelMattermost).Return(m.mockChannel, nil)
		m.mockChannel.EXPECT().Validate(newConfig).Return(nil)
		m.mockChannelSettingRepo.EXPECT().Update(gomock.Any(), existing).Return(nil)

		priority := 4
		got, err := newTestSettingsService(m).Update(context.Background(), 1, 3, models.ChannelSettingUpdate{Config: newConfig, Priority: &priority})
		require.NoError(t, err)
		assert.Equal(t, newConfig, got.Config)
		assert.Equal(t, 4, got.Priority)
	})

	t.Run("Should not revalidate when config is untouched", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		existing := &entity.ChannelSetting{ID: 3, UserID: 1, Channel: domain.ChannelNtfy, Enabled: true}
		m.mockChannelSettingRepo.EXPECT().GetByID(gomock.Any(), int64(3), int64(1)).Return(existing, nil)
		m.mockChannelSettingRepo.EXPECT().Update(gomock.Any(), existing).Return(nil)

		disabled := false
		got, err := newTestSettingsService(m).Update(context.Background(), 1, 3, models.ChannelSettingUpdate{Enabled: &disabled})
		require.NoError(t, err)
		assert.False(t, got.Enabled)
	})

	t.Run("Should return not found for a foreign setting", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockChannelSettingRepo.EXPECT().GetByID(gomock.Any(), int64(3), int64(2)).Return(nil, nil)

		_, err := newTestSettingsService(m).Update(context.Background(), 2, 3, models.ChannelSettingUpdate{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func Test_settingsService_TestSend(t *testing.T) {
	setting := &entity.ChannelSetting{ID: 3, UserID: 1, Channel: domain.ChannelNtfy, Enabled: true, Config: map[string]any{"topic": "t"}}

	tests := []struct {
		name        string
		buildMock   func(mocks allMocks)
		wantSuccess bool
		wantMessage string
	}{
		{
			name: "Should report success",
			buildMock: func(mocks allMocks) {
				mocks.mockChannelSettingRepo.EXPECT().GetByID(gomock.Any(), int64(3), int64(1)).Return(setting, nil)
				mocks.mockDispatcher.EXPECT().SendOne(gomock.Any(), setting, gomock.Any()).Return(nil)
			},
			wantSuccess: true,
			wantMessage: "Test notification sent via ntfy",
		},
		{
			name: "Should report the delivery error",
			buildMock: func(mocks allMocks) {
				mocks.mockChannelSettingRepo.EXPECT().GetByID(gomock.Any(), int64(3), int64(1)).Return(setting, nil)
				mocks.mockDispatcher.EXPECT().SendOne(gomock.Any(), setting, gomock.Any()).
					Return(domain.Terminal(domain.ChannelNtfy, errors.New("unexpected status 403: forbidden")))
			},
			wantMessage: "ntfy delivery failed (terminal): unexpected status 403: forbidden",
		},
		{
			name: "Should report a missing setting",
			buildMock: func(mocks allMocks) {
				mocks.mockChannelSettingRepo.EXPECT().GetByID(gomock.Any(), int64(3), int64(1)).Return(nil, nil)
			},
			wantMessage: "Setting not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			// no expectation on the notification repo: a test send must not touch history
			tt.buildMock(m)

			success, message := newTestSettingsService(m).TestSend(context.Background(), 1, 3)
			assert.Equal(t, tt.wantSuccess, success)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func Test_settingsService_NtfyDefaults(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	assert.Equal(t, models.NtfyDefaults{Server: "https://ntfy.sh", HasToken: true}, newTestSettingsService(m).NtfyDefaults())
}

func Test_settingsService_RegisterPushToken(t *testing.T) {
	dm := database.NewInstance(database.SetupTestDB(t))
	ctx := context.Background()

	registry := channel.New(config.Config{}, http.DefaultClient)
	s := newSettingsService(dm, registry, nil, models.NtfyDefaults{}, zap.NewNop())

	first, err := s.RegisterPushToken(ctx, 1, "ExponentPushToken[first]")
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelExpoPush, first.Channel)
	assert.Equal(t, domain.PushChannelPriority, first.Priority)
	assert.True(t, first.Enabled)

	// a user disabling push and registering again re-enables the same row
	disabled := false
	_, err = s.Update(ctx, 1, first.ID, models.ChannelSettingUpdate{Enabled: &disabled})
	require.NoError(t, err)

	second, err := s.RegisterPushToken(ctx, 1, "ExponentPushToken[second]")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	settings, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.True(t, settings[0].Enabled)
	assert.Equal(t, "ExponentPushToken[second]", settings[0].Config["push_token"])

	_, err = s.RegisterPushToken(ctx, 1, "not-a-token")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "push_token", ve.Field)
}

func Test_settingsService_Delete(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockChannelSettingRepo.EXPECT().Delete(gomock.Any(), int64(3), int64(1)).Return(true, nil)
	m.mockChannelSettingRepo.EXPECT().Delete(gomock.Any(), int64(4), int64(1)).Return(false, nil)

	s := newTestSettingsService(m)
	assert.NoError(t, s.Delete(context.Background(), 1, 3))
	assert.ErrorIs(t, s.Delete(context.Background(), 1, 4), domain.ErrNotFound)
}
