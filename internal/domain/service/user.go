package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
)

type userService struct {
	dm contract.DataManager
}

func newUserService(dm contract.DataManager) *userService {
	return &userService{dm: dm}
}

// SyncTimezone records the zone reported for userID. An empty zone leaves the
// stored one alone; a zone the runtime cannot load is rejected.
func (s *userService) SyncTimezone(ctx context.Context, userID int64, timezone string) error {
	if timezone == "" {
		return nil
	}

	if _, err := time.LoadLocation(timezone); err != nil {
		return domain.NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", timezone))
	}

	if err := s.dm.User().Upsert(ctx, &entity.User{ID: userID, Timezone: timezone}); err != nil {
		return fmt.Errorf("failed to sync user timezone: %w", err)
	}
	return nil
}
