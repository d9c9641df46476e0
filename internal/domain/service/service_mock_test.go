package service

import (
	"context"
	"sync"
	"testing"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/metrics"
	"github.com/diegoclair/wardrobe-notifier/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager        *mocks.MockDataManager
	mockUserRepo           *mocks.MockUserRepo
	mockScheduleRepo       *mocks.MockScheduleRepo
	mockChannelSettingRepo *mocks.MockChannelSettingRepo
	mockNotificationRepo   *mocks.MockNotificationRepo
	mockRegistry           *mocks.MockChannelRegistry
	mockChannel            *mocks.MockChannel
	mockDispatcher         *mocks.MockDispatcher
	mockQueue              *mocks.MockJobQueue
	mockLease              *mocks.MockTickLease
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedule().Return(scheduleRepo).AnyTimes()

	channelSettingRepo := mocks.NewMockChannelSettingRepo(ctrl)
	dm.EXPECT().ChannelSetting().Return(channelSettingRepo).AnyTimes()

	notificationRepo := mocks.NewMockNotificationRepo(ctrl)
	dm.EXPECT().Notification().Return(notificationRepo).AnyTimes()

	// transactions run inline against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	m = allMocks{
		mockDataManager:        dm,
		mockUserRepo:           userRepo,
		mockScheduleRepo:       scheduleRepo,
		mockChannelSettingRepo: channelSettingRepo,
		mockNotificationRepo:   notificationRepo,
		mockRegistry:           mocks.NewMockChannelRegistry(ctrl),
		mockChannel:            mocks.NewMockChannel(ctrl),
		mockDispatcher:         mocks.NewMockDispatcher(ctrl),
		mockQueue:              mocks.NewMockJobQueue(ctrl),
		mockLease:              mocks.NewMockTickLease(ctrl),
	}

	return
}

func newTestMetrics() *metrics.Registry {
	return metrics.NewRegistry(prometheus.NewRegistry())
}

// inlineQueue runs every job as soon as it is submitted.
type inlineQueue struct {
	mu    sync.Mutex
	names []string
}

func (q *inlineQueue) Submit(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	q.mu.Lock()
	q.names = append(q.names, name)
	q.mu.Unlock()

	_ = fn(ctx)
	return nil
}

// heldQueue keeps submitted jobs until the test runs them.
type heldQueue struct {
	jobs []func(ctx context.Context) error
}

func (q *heldQueue) Submit(_ context.Context, _ string, fn func(ctx context.Context) error) error {
	q.jobs = append(q.jobs, fn)
	return nil
}

func (q *heldQueue) runAll(ctx context.Context) {
	jobs := q.jobs
	q.jobs = nil
	for _, fn := range jobs {
		_ = fn(ctx)
	}
}
