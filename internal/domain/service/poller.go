package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/tz"
	"github.com/diegoclair/wardrobe-notifier/internal/metrics"
	"go.uber.org/zap"
)

const tickLeaseTTL = 5 * time.Minute

// Poller turns due schedules into dispatch jobs, once per minute bucket.
type Poller struct {
	dm         contract.DataManager
	queue      contract.JobQueue
	dispatcher contract.Dispatcher
	lease      contract.TickLease // optional
	metrics    *metrics.Registry
	log        *zap.Logger
}

func newPoller(
	dm contract.DataManager,
	queue contract.JobQueue,
	dispatcher contract.Dispatcher,
	lease contract.TickLease,
	reg *metrics.Registry,
	log *zap.Logger,
) *Poller {
	return &Poller{
		dm:         dm,
		queue:      queue,
		dispatcher: dispatcher,
		lease:      lease,
		metrics:    reg,
		log:        log,
	}
}

// Tick enqueues one dispatch job per enabled schedule whose UTC weekday and
// HH:MM equal now's minute bucket. It returns once every due schedule has
// been handed off, and reports how many were.
func (p *Poller) Tick(ctx context.Context, now time.Time) (int, error) {
	now = now.UTC().Truncate(time.Minute)
	day := tz.Weekday(now)
	clock := now.Format(domain.ClockLayout)

	if !p.claim(ctx, now) {
		p.metrics.PollerTicks.WithLabelValues("skipped").Inc()
		p.log.Debug("tick already handled elsewhere", zap.Time("bucket", now))
		return 0, nil
	}

	schedules, err := p.dm.Schedule().ListDue(ctx, day, clock)
	if err != nil {
		p.metrics.PollerTicks.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("failed to list due schedules: %w", err)
	}
	p.metrics.PollerTicks.WithLabelValues("processed").Inc()
	p.metrics.SchedulesDue.Add(float64(len(schedules)))

	enqueued, inline := 0, 0
	for _, schedule := range schedules {
		job := contract.DispatchJob{
			ScheduleID:      schedule.ID,
			UserID:          schedule.UserID,
			Occasion:        schedule.Occasion,
			TargetDate:      p.targetDate(ctx, schedule, now),
			NotifyDayBefore: schedule.NotifyDayBefore,
		}

		// blocks while the queue is full
		err := p.queue.Submit(ctx, "dispatch", func(jobCtx context.Context) error {
			_, err := p.dispatcher.Dispatch(jobCtx, job)
			return err
		})
		if err == nil {
			enqueued++
			continue
		}

		// pool closed or tick cancelled
		p.log.Warn("failed to enqueue dispatch, dispatching inline",
			zap.Int64("schedule_id", schedule.ID),
			zap.Int64("user_id", schedule.UserID),
			zap.Error(err),
		)
		if _, err := p.dispatcher.Dispatch(context.WithoutCancel(ctx), job); err != nil {
			p.log.Error("inline dispatch failed",
				zap.Int64("schedule_id", schedule.ID),
				zap.Int64("user_id", schedule.UserID),
				zap.Error(err),
			)
			continue
		}
		inline++
	}

	if len(schedules) > 0 {
		p.log.Info("poller tick",
			zap.Int("day", day),
			zap.String("time", clock),
			zap.Int("due", len(schedules)),
			zap.Int("enqueued", enqueued),
			zap.Int("inline", inline),
		)
	}

	return enqueued + inline, nil
}

// claim reports whether this process should handle the bucket. Without a
// lease every process handles it; an unreachable lease store does not stop
// delivery.
func (p *Poller) claim(ctx context.Context, bucket time.Time) bool {
	if p.lease == nil {
		return true
	}

	ok, err := p.lease.Acquire(ctx, "poll:"+bucket.Format(time.RFC3339), tickLeaseTTL)
	if err != nil {
		p.log.Warn("tick lease unavailable, handling tick locally", zap.Error(err))
		return true
	}
	return ok
}

// targetDate is the user-local date of now, plus one day for reminders sent
// the evening before.
func (p *Poller) targetDate(ctx context.Context, schedule *entity.Schedule, now time.Time) time.Time {
	loc, err := userLocation(ctx, p.dm, schedule.UserID)
	if err != nil {
		p.log.Warn("falling back to UTC for target date", zap.Int64("user_id", schedule.UserID), zap.Error(err))
		loc = time.UTC
	}

	local := now.In(loc)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if schedule.NotifyDayBefore {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
