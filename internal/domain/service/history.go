package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/pkg/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyService struct {
	dm contract.DataManager
}

func newHistoryService(dm contract.DataManager) *historyService {
	return &historyService{dm: dm}
}

// List pages through the user's history, newest first. A zero limit means the
// default; other limits are clamped to 1..100 and a negative offset reads as 0.
func (h *historyService) List(ctx context.Context, userID int64, limit, offset int) (models.HistoryPage, error) {
	switch {
	case limit == 0:
		limit = defaultHistoryLimit
	case limit < 1:
		limit = 1
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.dm.Notification().ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return models.HistoryPage{}, fmt.Errorf("failed to list notification history: %w", err)
	}

	return models.HistoryPage{Items: items, Limit: limit, Offset: offset}, nil
}
