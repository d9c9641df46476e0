package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/tz"
	"github.com/diegoclair/wardrobe-notifier/pkg/models"
	"go.uber.org/zap"
)

const maxOccasionLength = 100

type scheduleService struct {
	dm  contract.DataManager
	log *zap.Logger
}

func newScheduleService(dm contract.DataManager, log *zap.Logger) *scheduleService {
	return &scheduleService{dm: dm, log: log}
}

// List returns the user's schedules in local time, ordered by local day then time.
func (s *scheduleService) List(ctx context.Context, userID int64) ([]models.Schedule, error) {
	loc, err := userLocation(ctx, s.dm, userID)
	if err != nil {
		return nil, err
	}

	schedules, err := s.dm.Schedule().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	result := make([]models.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		local, err := toLocalSchedule(schedule, loc)
		if err != nil {
			s.log.Warn("skipping unreadable schedule", zap.Int64("schedule_id", schedule.ID), zap.Error(err))
			continue
		}
		result = append(result, local)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].DayOfWeek != result[j].DayOfWeek {
			return result[i].DayOfWeek < result[j].DayOfWeek
		}
		return result[i].NotificationTime < result[j].NotificationTime
	})

	return result, nil
}

func (s *scheduleService) Create(ctx context.Context, userID int64, in models.ScheduleInput) (models.Schedule, error) {
	occasion, err := normalizeOccasion(in.Occasion)
	if err != nil {
		return models.Schedule{}, err
	}

	loc, err := userLocation(ctx, s.dm, userID)
	if err != nil {
		return models.Schedule{}, err
	}

	utcTime, utcDay, err := tz.LocalToUTC(in.NotificationTime, in.DayOfWeek, loc)
	if err != nil {
		return models.Schedule{}, err
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	schedule := &entity.Schedule{
		UserID:           userID,
		DayOfWeek:        utcDay,
		NotificationTime: utcTime,
		Occasion:         occasion,
		Enabled:          enabled,
		NotifyDayBefore:  in.NotifyDayBefore,
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Schedule().FindDuplicate(ctx, entity.ScheduleKey{
			UserID:           userID,
			DayOfWeek:        utcDay,
			NotificationTime: utcTime,
			Occasion:         occasion,
			NotifyDayBefore:  in.NotifyDayBefore,
		})
		if err != nil {
			return fmt.Errorf("failed to check duplicate schedule: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("an identical schedule already exists: %w", domain.ErrConflict)
		}

		return tx.Schedule().Create(ctx, schedule)
	})
	if err != nil {
		return models.Schedule{}, err
	}

	s.log.Info("schedule created",
		zap.Int64("user_id", userID),
		zap.Int64("schedule_id", schedule.ID),
		zap.Int("utc_day", utcDay),
		zap.String("utc_time", utcTime),
	)

	return toLocalSchedule(schedule, loc)
}

func (s *scheduleService) Get(ctx context.Context, userID, id int64) (models.Schedule, error) {
	loc, err := userLocation(ctx, s.dm, userID)
	if err != nil {
		return models.Schedule{}, err
	}

	schedule, err := s.get(ctx, s.dm, userID, id)
	if err != nil {
		return models.Schedule{}, err
	}

	return toLocalSchedule(schedule, loc)
}

// Update applies the set fields of in. A new time alone keeps the schedule's
// current local day; a new day re-anchors day and time together.
func (s *scheduleService) Update(ctx context.Context, userID, id int64, in models.ScheduleUpdate) (models.Schedule, error) {
	loc, err := userLocation(ctx, s.dm, userID)
	if err != nil {
		return models.Schedule{}, err
	}

	var schedule *entity.Schedule
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		schedule, err = s.get(ctx, tx, userID, id)
		if err != nil {
			return err
		}

		if in.NotificationTime != nil || in.DayOfWeek != nil {
			localTime, localDay, err := tz.UTCToLocal(schedule.NotificationTime, schedule.DayOfWeek, loc)
			if err != nil {
				return fmt.Errorf("stored schedule %d is unreadable: %w", schedule.ID, err)
			}
			if in.NotificationTime != nil {
				localTime = *in.NotificationTime
			}
			if in.DayOfWeek != nil {
				localDay = *in.DayOfWeek
			}

			utcTime, utcDay, err := tz.LocalToUTC(localTime, localDay, loc)
			if err != nil {
				return err
			}
			schedule.NotificationTime = utcTime
			schedule.DayOfWeek = utcDay
		}

		if in.Occasion != nil {
			occasion, err := normalizeOccasion(*in.Occasion)
			if err != nil {
				return err
			}
			schedule.Occasion = occasion
		}
		if in.Enabled != nil {
			schedule.Enabled = *in.Enabled
		}
		if in.NotifyDayBefore != nil {
			schedule.NotifyDayBefore = *in.NotifyDayBefore
		}

		return tx.Schedule().Update(ctx, schedule)
	})
	if err != nil {
		return models.Schedule{}, err
	}

	return toLocalSchedule(schedule, loc)
}

func (s *scheduleService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.dm.Schedule().Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if !deleted {
		return fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}

	s.log.Info("schedule deleted", zap.Int64("user_id", userID), zap.Int64("schedule_id", id))
	return nil
}

func (s *scheduleService) get(ctx context.Context, dm contract.DataManager, userID, id int64) (*entity.Schedule, error) {
	schedule, err := dm.Schedule().GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}
	return schedule, nil
}

func normalizeOccasion(occasion string) (string, error) {
	occasion = strings.TrimSpace(occasion)
	if occasion == "" {
		return "", domain.NewValidationError("occasion", "is required")
	}
	if len(occasion) > maxOccasionLength {
		return "", domain.NewValidationError("occasion", fmt.Sprintf("must be at most %d characters", maxOccasionLength))
	}
	return occasion, nil
}

func toLocalSchedule(schedule *entity.Schedule, loc *time.Location) (models.Schedule, error) {
	localTime, localDay, err := tz.UTCToLocal(schedule.NotificationTime, schedule.DayOfWeek, loc)
	if err != nil {
		return models.Schedule{}, err
	}

	return models.Schedule{
		ID:               schedule.ID,
		UserID:           schedule.UserID,
		DayOfWeek:        localDay,
		NotificationTime: localTime,
		Occasion:         schedule.Occasion,
		Enabled:          schedule.Enabled,
		NotifyDayBefore:  schedule.NotifyDayBefore,
		CreatedAt:        schedule.CreatedAt,
		UpdatedAt:        schedule.UpdatedAt,
	}, nil
}
