package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/database"
	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/internal/worker"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// a Monday, 08:00:37 UTC
var pollNow = time.Date(2026, 3, 2, 8, 0, 37, 0, time.UTC)

func Test_Poller_Tick(t *testing.T) {
	type want struct {
		submitted int
		jobs      []contract.DispatchJob
		wantErr   bool
	}
	tests := []struct {
		name      string
		withLease bool
		buildMock func(mocks allMocks)
		want      want
	}{
		{
			name: "Should dispatch every due schedule with the user-local target date",
			buildMock: func(mocks allMocks) {
				mocks.mockScheduleRepo.EXPECT().ListDue(gomock.Any(), domain.Monday, "08:00").Return([]*entity.Schedule{
					{ID: 1, UserID: 10, Occasion: "work", Enabled: true},
					{ID: 2, UserID: 20, Occasion: "gym", Enabled: true, NotifyDayBefore: true},
					{ID: 3, UserID: 30, Occasion: "brunch", Enabled: true},
				}, nil)
				mocks.mockUserRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, nil)
				mocks.mockUserRepo.EXPECT().GetByID(gomock.Any(), int64(20)).Return(&entity.User{ID: 20, Timezone: "Asia/Tokyo"}, nil)
				mocks.mockUserRepo.EXPECT().GetByID(gomock.Any(), int64(30)).Return(&entity.User{ID: 30, Timezone: "Etc/GMT+10"}, nil)
			},
			want: want{
				submitted: 3,
				jobs: []contract.DispatchJob{
					{ScheduleID: 1, UserID: 10, Occasion: "work", TargetDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
					// 17:00 Monday in Tokyo, reminding about Tuesday
					{ScheduleID: 2, UserID: 20, Occasion: "gym", NotifyDayBefore: true, TargetDate: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
					// 22:00 Sunday at UTC-10
					{ScheduleID: 3, UserID: 30, Occasion: "brunch", TargetDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
				},
			},
		},
		{
			name: "Should fail when due schedules cannot be listed",
			buildMock: func(mocks allMocks) {
				mocks.mockScheduleRepo.EXPECT().ListDue(gomock.Any(), domain.Monday, "08:00").Return(nil, errors.New("disk I/O error"))
			},
			want: want{wantErr: true},
		},
		{
			name:      "Should skip a bucket another process already claimed",
			withLease: true,
			buildMock: func(mocks allMocks) {
				mocks.mockLease.EXPECT().Acquire(gomock.Any(), "poll:2026-03-02T08:00:00Z", tickLeaseTTL).Return(false, nil)
			},
		},
		{
			name:      "Should handle the bucket locally when the lease store is down",
			withLease: true,
			buildMock: func(mocks allMocks) {
				mocks.mockLease.EXPECT().Acquire(gomock.Any(), "poll:2026-03-02T08:00:00Z", tickLeaseTTL).Return(false, errors.New("connection refused"))
				mocks.mockScheduleRepo.EXPECT().ListDue(gomock.Any(), domain.Monday, "08:00").Return([]*entity.Schedule{
					{ID: 1, UserID: 10, Occasion: "work", Enabled: true},
				}, nil)
				mocks.mockUserRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, nil)
			},
			want: want{
				submitted: 1,
				jobs: []contract.DispatchJob{
					{ScheduleID: 1, UserID: 10, Occasion: "work", TargetDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			var jobs []contract.DispatchJob
			m.mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, job contract.DispatchJob) (contract.DispatchOutcome, error) {
					jobs = append(jobs, job)
					return contract.DispatchOutcome{}, nil
				}).AnyTimes()

			var lease contract.TickLease
			if tt.withLease {
				lease = m.mockLease
			}

			p := newPoller(m.mockDataManager, &inlineQueue{}, m.mockDispatcher, lease, newTestMetrics(), zap.NewNop())
			got, err := p.Tick(context.Background(), pollNow)

			if tt.want.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.submitted, got)
			require.Len(t, jobs, len(tt.want.jobs))
			for i, want := range tt.want.jobs {
				assert.Equal(t, want.ScheduleID, jobs[i].ScheduleID)
				assert.Equal(t, want.UserID, jobs[i].UserID)
				assert.Equal(t, want.Occasion, jobs[i].Occasion)
				assert.Equal(t, want.NotifyDayBefore, jobs[i].NotifyDayBefore)
				assert.Equal(t, want.TargetDate.Format(domain.DateLayout), jobs[i].TargetDate.Format(domain.DateLayout))
			}
		})
	}
}

func Test_Poller_DispatchesInlineWhenSubmitFails(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockScheduleRepo.EXPECT().ListDue(gomock.Any(), domain.Monday, "08:00").Return([]*entity.Schedule{
		{ID: 1, UserID: 10, Occasion: "work"},
		{ID: 2, UserID: 10, Occasion: "dinner"},
		{ID: 3, UserID: 10, Occasion: "gym"},
	}, nil)
	m.mockUserRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, nil).Times(3)
	gomock.InOrder(
		m.mockQueue.EXPECT().Submit(gomock.Any(), "dispatch", gomock.Any()).Return(errors.New("worker pool is closed")),
		m.mockQueue.EXPECT().Submit(gomock.Any(), "dispatch", gomock.Any()).Return(nil),
		m.mockQueue.EXPECT().Submit(gomock.Any(), "dispatch", gomock.Any()).Return(errors.New("worker pool is closed")),
	)
	gomock.InOrder(
		m.mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job contract.DispatchJob) (contract.DispatchOutcome, error) {
				assert.Equal(t, int64(1), job.ScheduleID)
				return contract.DispatchOutcome{Attempted: 1, Sent: 1}, nil
			}),
		m.mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Return(contract.DispatchOutcome{}, errors.New("database is locked")),
	)

	reg := newTestMetrics()
	p := newPoller(m.mockDataManager, m.mockQueue, m.mockDispatcher, nil, reg, zap.NewNop())
	got, err := p.Tick(context.Background(), pollNow)

	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, float64(3), testutil.ToFloat64(reg.SchedulesDue))
	assert.Equal(t, float64(1), testutil.ToFloat64(reg.PollerTicks.WithLabelValues("processed")))
}

// blockingDispatcher records every job on entry and then holds it until
// release is closed.
type blockingDispatcher struct {
	release chan struct{}

	mu      sync.Mutex
	started map[int64]error
}

func (d *blockingDispatcher) Dispatch(ctx context.Context, job contract.DispatchJob) (contract.DispatchOutcome, error) {
	d.mu.Lock()
	d.started[job.ScheduleID] = ctx.Err()
	d.mu.Unlock()

	<-d.release
	return contract.DispatchOutcome{}, nil
}

func (d *blockingDispatcher) SendOne(context.Context, *entity.ChannelSetting, contract.Message) error {
	return nil
}

func (d *blockingDispatcher) has(ids ...int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		if _, ok := d.started[id]; !ok {
			return false
		}
	}
	return true
}

func Test_Poller_TickWithSaturatedPool(t *testing.T) {
	due := []*entity.Schedule{
		{ID: 1, UserID: 10, Occasion: "work"},
		{ID: 2, UserID: 10, Occasion: "dinner"},
		{ID: 3, UserID: 10, Occasion: "gym"},
	}

	setup := func(t *testing.T) (*Poller, *blockingDispatcher) {
		m, ctrl := newServiceTestMock(t)
		t.Cleanup(ctrl.Finish)

		m.mockScheduleRepo.EXPECT().ListDue(gomock.Any(), domain.Monday, "08:00").Return(due, nil)
		m.mockUserRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, nil).Times(3)

		d := &blockingDispatcher{release: make(chan struct{}), started: map[int64]error{}}
		pool := worker.New(worker.Config{Workers: 1, QueueSize: 1}, zap.NewNop(), newTestMetrics())
		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = pool.Shutdown(ctx)
		})

		return newPoller(m.mockDataManager, pool, d, nil, newTestMetrics(), zap.NewNop()), d
	}

	type result struct {
		n   int
		err error
	}

	t.Run("Should wait for room in the queue instead of dropping a schedule", func(t *testing.T) {
		p, d := setup(t)

		done := make(chan result, 1)
		go func() {
			n, err := p.Tick(context.Background(), pollNow)
			done <- result{n, err}
		}()

		require.Eventually(t, func() bool { return d.has(1) }, 2*time.Second, 5*time.Millisecond)
		select {
		case <-done:
			t.Fatal("tick returned while a schedule was still waiting for the queue")
		case <-time.After(50 * time.Millisecond):
		}

		close(d.release)

		select {
		case r := <-done:
			require.NoError(t, r.err)
			assert.Equal(t, 3, r.n)
		case <-time.After(2 * time.Second):
			t.Fatal("tick never finished")
		}
		assert.Eventually(t, func() bool { return d.has(1, 2, 3) }, 2*time.Second, 5*time.Millisecond)
	})

	t.Run("Should dispatch inline what could not be enqueued before the tick ended", func(t *testing.T) {
		p, d := setup(t)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		done := make(chan result, 1)
		go func() {
			n, err := p.Tick(ctx, pollNow)
			done <- result{n, err}
		}()

		// schedule 1 runs on the only worker, 2 fills the queue and 3 is
		// handled by the tick itself once its context ends
		require.Eventually(t, func() bool { return d.has(1, 3) }, 2*time.Second, 5*time.Millisecond)
		d.mu.Lock()
		assert.NoError(t, d.started[3], "inline dispatch must run with a live context")
		d.mu.Unlock()

		close(d.release)

		select {
		case r := <-done:
			require.NoError(t, r.err)
			assert.Equal(t, 3, r.n)
		case <-time.After(2 * time.Second):
			t.Fatal("tick never finished")
		}
		assert.Eventually(t, func() bool { return d.has(2) }, 2*time.Second, 5*time.Millisecond)
	})
}

func Test_Poller_TickAgainstDatabase(t *testing.T) {
	dm := database.NewInstance(database.SetupTestDB(t))
	ctx := context.Background()

	require.NoError(t, dm.User().Upsert(ctx, &entity.User{ID: 1, Timezone: "UTC"}))
	for _, s := range []*entity.Schedule{
		{UserID: 1, DayOfWeek: domain.Monday, NotificationTime: "08:00", Occasion: "work", Enabled: true},
		{UserID: 1, DayOfWeek: domain.Monday, NotificationTime: "08:00", Occasion: "party", Enabled: false},
		{UserID: 1, DayOfWeek: domain.Monday, NotificationTime: "08:01", Occasion: "lunch", Enabled: true},
		{UserID: 1, DayOfWeek: domain.Tuesday, NotificationTime: "08:00", Occasion: "gym", Enabled: true},
	} {
		require.NoError(t, dm.Schedule().Create(ctx, s))
	}

	var occasions []string
	dispatcher := &recordingDispatcher{dispatch: func(job contract.DispatchJob) {
		occasions = append(occasions, job.Occasion)
	}}

	p := newPoller(dm, &inlineQueue{}, dispatcher, nil, newTestMetrics(), zap.NewNop())
	got, err := p.Tick(ctx, pollNow)

	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, []string{"work"}, occasions)
}

// recordingDispatcher captures dispatch jobs without sending anything.
type recordingDispatcher struct {
	dispatch func(job contract.DispatchJob)
}

func (d *recordingDispatcher) Dispatch(_ context.Context, job contract.DispatchJob) (contract.DispatchOutcome, error) {
	d.dispatch(job)
	return contract.DispatchOutcome{}, nil
}

func (d *recordingDispatcher) SendOne(context.Context, *entity.ChannelSetting, contract.Message) error {
	return nil
}
