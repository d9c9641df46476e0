package database

import (
	"context"
	"testing"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelSettingRepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	repo := newChannelSettingRepo(db.conn)
	ctx := context.Background()

	setting := &entity.ChannelSetting{
		UserID:   1,
		Channel:  domain.ChannelNtfy,
		Enabled:  true,
		Priority: 2,
		Config:   map[string]any{"topic": "outfits"},
	}
	require.NoError(t, repo.Create(ctx, setting))
	assert.NotZero(t, setting.ID)

	found, err := repo.GetByID(ctx, setting.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.ChannelNtfy, found.Channel)
	assert.Equal(t, 2, found.Priority)
	assert.Equal(t, "outfits", found.Config["topic"])

	other, err := repo.GetByID(ctx, setting.ID, 2)
	require.NoError(t, err)
	assert.Nil(t, other)

	byChannel, err := repo.GetByUserAndChannel(ctx, 1, domain.ChannelNtfy)
	require.NoError(t, err)
	require.NotNil(t, byChannel)
	assert.Equal(t, setting.ID, byChannel.ID)

	missing, err := repo.GetByUserAndChannel(ctx, 1, domain.ChannelEmail)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChannelSettingRepository_ListEnabledByUser(t *testing.T) {
	db := SetupTestDB(t)
	repo := newChannelSettingRepo(db.conn)
	ctx := context.Background()

	email := &entity.ChannelSetting{UserID: 1, Channel: domain.ChannelEmail, Enabled: true, Priority: 5, Config: map[string]any{"address": "a@example.com"}}
	push := &entity.ChannelSetting{UserID: 1, Channel: domain.ChannelExpoPush, Enabled: true, Priority: 0, Config: map[string]any{"push_token": "ExponentPushToken[x]"}}
	disabled := &entity.ChannelSetting{UserID: 1, Channel: domain.ChannelNtfy, Enabled: false, Priority: 1, Config: map[string]any{"topic": "t"}}
	foreign := &entity.ChannelSetting{UserID: 2, Channel: domain.ChannelNtfy, Enabled: true, Priority: 0, Config: map[string]any{"topic": "t"}}
	for _, s := range []*entity.ChannelSetting{email, push, disabled, foreign} {
		require.NoError(t, repo.Create(ctx, s))
	}

	settings, err := repo.ListEnabledByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, push.ID, settings[0].ID, "lower priority value comes first")
	assert.Equal(t, email.ID, settings[1].ID)

	all, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestChannelSettingRepository_UpdateAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	repo := newChannelSettingRepo(db.conn)
	ctx := context.Background()

	setting := &entity.ChannelSetting{UserID: 1, Channel: domain.ChannelNtfy, Enabled: true, Config: map[string]any{"topic": "a"}}
	require.NoError(t, repo.Create(ctx, setting))

	setting.Enabled = false
	setting.Priority = 9
	setting.Config = map[string]any{"topic": "b"}
	require.NoError(t, repo.Update(ctx, setting))

	found, err := repo.GetByID(ctx, setting.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.Enabled)
	assert.Equal(t, 9, found.Priority)
	assert.Equal(t, "b", found.Config["topic"])

	deleted, err := repo.Delete(ctx, setting.ID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, setting.ID, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}
