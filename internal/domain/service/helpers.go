package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/tz"
)

// userLocation returns the zone of userID. Unknown users and unresolvable
// zones fall back to UTC; only storage failures are errors.
func userLocation(ctx context.Context, dm contract.DataManager, userID int64) (*time.Location, error) {
	user, err := dm.User().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return time.UTC, nil
	}
	return tz.Location(user.Timezone), nil
}
