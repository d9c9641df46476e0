package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/internal/metrics"
	"go.uber.org/zap"
)

// RetryCoordinator re-attempts failed deliveries until they succeed, hit the
// attempt limit or fail terminally.
type RetryCoordinator struct {
	dm         contract.DataManager
	queue      contract.JobQueue
	dispatcher contract.Dispatcher
	maxTries   int
	batch      int
	metrics    *metrics.Registry
	log        *zap.Logger

	// rows selected by a pass whose retry job has not finished yet
	mu       sync.Mutex
	inFlight map[int64]struct{}
}

func newRetryCoordinator(
	dm contract.DataManager,
	queue contract.JobQueue,
	dispatcher contract.Dispatcher,
	maxTries, batch int,
	reg *metrics.Registry,
	log *zap.Logger,
) *RetryCoordinator {
	return &RetryCoordinator{
		dm:         dm,
		queue:      queue,
		dispatcher: dispatcher,
		maxTries:   maxTries,
		batch:      batch,
		metrics:    reg,
		log:        log,
		inFlight:   make(map[int64]struct{}),
	}
}

// Pass enqueues one retry job per retryable row, oldest first. Rows still
// being retried from an earlier pass are skipped. Failed rows already at the
// attempt limit are abandoned first.
func (r *RetryCoordinator) Pass(ctx context.Context) (int, error) {
	abandoned, err := r.dm.Notification().AbandonExhausted(ctx, r.maxTries)
	if err != nil {
		return 0, fmt.Errorf("failed to abandon exhausted notifications: %w", err)
	}
	if abandoned > 0 {
		r.log.Warn("abandoned notifications past the attempt limit",
			zap.Int64("count", abandoned),
			zap.Int("max_tries", r.maxTries),
		)
	}

	rows, err := r.dm.Notification().ListRetryable(ctx, r.maxTries, r.batch)
	if err != nil {
		return 0, fmt.Errorf("failed to list retryable notifications: %w", err)
	}

	enqueued := 0
	for _, row := range rows {
		if !r.claim(row.ID) {
			continue
		}

		n := row
		err := r.queue.Submit(ctx, "retry", func(jobCtx context.Context) error {
			defer r.release(n.ID)
			return r.retry(jobCtx, n)
		})
		if err != nil {
			r.release(n.ID)
			r.log.Error("failed to enqueue retry", zap.Int64("notification_id", n.ID), zap.Error(err))
			continue
		}
		enqueued++
	}

	r.metrics.RetriesEnqueued.Add(float64(enqueued))
	if len(rows) > 0 {
		r.log.Info("retry pass", zap.Int("retryable", len(rows)), zap.Int("enqueued", enqueued))
	}

	return enqueued, nil
}

// retry performs one more attempt for n and moves the row to its next state.
func (r *RetryCoordinator) retry(ctx context.Context, n *entity.Notification) error {
	// the row must reach its next state even if the job timed out
	writeCtx := context.WithoutCancel(ctx)

	setting, err := r.dm.ChannelSetting().GetByID(ctx, n.ChannelSettingID, n.UserID)
	if err != nil {
		return fmt.Errorf("failed to load channel setting %d: %w", n.ChannelSettingID, err)
	}

	switch {
	case setting == nil:
		return r.update(writeCtx, n, domain.StatusAbandoned, n.AttemptCount, "channel setting no longer exists")
	case !setting.Enabled:
		return r.update(writeCtx, n, domain.StatusAbandoned, n.AttemptCount, "channel setting is disabled")
	}

	msg := contract.Message{
		Title:      n.Title,
		Body:       n.Body,
		Occasion:   n.Occasion,
		TargetDate: n.TargetDate,
	}

	attempt := n.AttemptCount + 1
	sendErr := r.dispatcher.SendOne(ctx, setting, msg)

	status := domain.StatusSent
	switch {
	case sendErr == nil:
	case domain.IsTerminal(sendErr), attempt >= r.maxTries:
		status = domain.StatusAbandoned
	default:
		status = domain.StatusRetrying
	}

	if err := r.update(writeCtx, n, status, attempt, errorText(sendErr)); err != nil {
		return err
	}
	r.metrics.Deliveries.WithLabelValues(n.Channel, string(status)).Inc()

	r.log.Info("retry attempt",
		zap.Int64("notification_id", n.ID),
		zap.String("channel", n.Channel),
		zap.Int("attempt", attempt),
		zap.String("status", string(status)),
		zap.NamedError("send_error", sendErr),
	)

	return sendErr
}

func (r *RetryCoordinator) update(ctx context.Context, n *entity.Notification, status domain.NotificationStatus, attempts int, lastError string) error {
	if err := r.dm.Notification().UpdateStatus(ctx, n.ID, status, attempts, lastError); err != nil {
		return fmt.Errorf("failed to update notification %d: %w", n.ID, err)
	}
	return nil
}

func (r *RetryCoordinator) claim(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.inFlight[id]; busy {
		return false
	}
	r.inFlight[id] = struct{}{}
	return true
}

func (r *RetryCoordinator) release(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, id)
}
