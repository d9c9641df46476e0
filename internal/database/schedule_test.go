package database

import (
	"context"
	"testing"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	repo := newScheduleRepo(db.conn)
	ctx := context.Background()

	schedule := &entity.Schedule{
		UserID:           1,
		DayOfWeek:        domain.Tuesday,
		NotificationTime: "07:30",
		Occasion:         "work",
		Enabled:          true,
	}

	err := repo.Create(ctx, schedule)
	require.NoError(t, err, "Failed to create schedule")

	assert.NotZero(t, schedule.ID, "Expected schedule ID to be set after creation")
	assert.False(t, schedule.CreatedAt.IsZero())
}

func TestScheduleRepository_GetByID(t *testing.T) {
	db := SetupTestDB(t)
	repo := newScheduleRepo(db.conn)
	ctx := context.Background()

	original := &entity.Schedule{
		UserID:           1,
		DayOfWeek:        domain.Friday,
		NotificationTime: "18:45",
		Occasion:         "date night",
		Enabled:          true,
		NotifyDayBefore:  true,
	}
	require.NoError(t, repo.Create(ctx, original))

	found, err := repo.GetByID(ctx, original.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, original.UserID, found.UserID)
	assert.Equal(t, original.DayOfWeek, found.DayOfWeek)
	assert.Equal(t, original.NotificationTime, found.NotificationTime)
	assert.Equal(t, original.Occasion, found.Occasion)
	assert.True(t, found.Enabled)
	assert.True(t, found.NotifyDayBefore)

	t.Run("should not return another user's schedule", func(t *testing.T) {
		other, err := repo.GetByID(ctx, original.ID, 2)
		require.NoError(t, err)
		assert.Nil(t, other)
	})

	t.Run("should return nil when not found", func(t *testing.T) {
		notFound, err := repo.GetByID(ctx, 99999, 1)
		require.NoError(t, err)
		assert.Nil(t, notFound)
	})
}

func TestScheduleRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	repo := newScheduleRepo(db.conn)
	ctx := context.Background()

	schedule := &entity.Schedule{UserID: 1, DayOfWeek: domain.Monday, NotificationTime: "09:00", Occasion: "work", Enabled: true}
	require.NoError(t, repo.Create(ctx, schedule))

	schedule.DayOfWeek = domain.Sunday
	schedule.NotificationTime = "22:15"
	schedule.Occasion = "brunch"
	schedule.Enabled = false
	require.NoError(t, repo.Update(ctx, schedule))

	updated, err := repo.GetByID(ctx, schedule.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.Sunday, updated.DayOfWeek)
	assert.Equal(t, "22:15", updated.NotificationTime)
	assert.Equal(t, "brunch", updated.Occasion)
	assert.False(t, updated.Enabled)
}

func TestScheduleRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	repo := newScheduleRepo(db.conn)
	ctx := context.Background()

	schedule := &entity.Schedule{UserID: 1, DayOfWeek: domain.Monday, NotificationTime: "09:00", Occasion: "work", Enabled: true}
	require.NoError(t, repo.Create(ctx, schedule))

	deleted, err := repo.Delete(ctx, schedule.ID, 2)
	require.NoError(t, err)
	assert.False(t, deleted, "another user must not delete the schedule")

	deleted, err = repo.Delete(ctx, schedule.ID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.GetByID(ctx, schedule.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestScheduleRepository_FindDuplicate(t *testing.T) {
	db := SetupTestDB(t)
	repo := newScheduleRepo(db.conn)
	ctx := context.Background()

	schedule := &entity.Schedule{UserID: 1, DayOfWeek: domain.Wednesday, NotificationTime: "06:00", Occasion: "gym", Enabled: true}
	require.NoError(t, repo.Create(ctx, schedule))

	key := entity.ScheduleKey{UserID: 1, DayOfWeek: domain.Wednesday, NotificationTime: "06:00", Occasion: "gym"}

	found, err := repo.FindDuplicate(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, schedule.ID, found.ID)

	key.NotifyDayBefore = true
	found, err = repo.FindDuplicate(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, found)

	key.NotifyDayBefore = false
	key.Occasion = "office"
	found, err = repo.FindDuplicate(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestScheduleRepository_ListDue(t *testing.T) {
	db := SetupTestDB(t)
	repo := newScheduleRepo(db.conn)
	ctx := context.Background()

	due := &entity.Schedule{UserID: 1, DayOfWeek: domain.Thursday, NotificationTime: "08:00", Occasion: "work", Enabled: true}
	disabled := &entity.Schedule{UserID: 2, DayOfWeek: domain.Thursday, NotificationTime: "08:00", Occasion: "work", Enabled: false}
	otherTime := &entity.Schedule{UserID: 3, DayOfWeek: domain.Thursday, NotificationTime: "08:01", Occasion: "work", Enabled: true}
	otherDay := &entity.Schedule{UserID: 4, DayOfWeek: domain.Friday, NotificationTime: "08:00", Occasion: "work", Enabled: true}
	for _, s := range []*entity.Schedule{due, disabled, otherTime, otherDay} {
		require.NoError(t, repo.Create(ctx, s))
	}

	schedules, err := repo.ListDue(ctx, domain.Thursday, "08:00")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, due.ID, schedules[0].ID)
}

func TestScheduleRepository_ListByUser(t *testing.T) {
	db := SetupTestDB(t)
	repo := newScheduleRepo(db.conn)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Schedule{UserID: 1, DayOfWeek: 0, NotificationTime: "08:00", Occasion: "a"}))
	require.NoError(t, repo.Create(ctx, &entity.Schedule{UserID: 1, DayOfWeek: 1, NotificationTime: "08:00", Occasion: "b"}))
	require.NoError(t, repo.Create(ctx, &entity.Schedule{UserID: 2, DayOfWeek: 1, NotificationTime: "08:00", Occasion: "c"}))

	schedules, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, schedules, 2)

	empty, err := repo.ListByUser(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
