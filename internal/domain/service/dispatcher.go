package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/internal/metrics"
	"go.uber.org/zap"
)

type failedAttempt struct {
	setting *entity.ChannelSetting
	status  domain.NotificationStatus
	err     error
}

type dispatcher struct {
	dm          contract.DataManager
	channels    contract.ChannelRegistry
	mode        domain.DispatchMode
	maxTries    int
	sendTimeout time.Duration
	metrics     *metrics.Registry
	log         *zap.Logger
}

func newDispatcher(
	dm contract.DataManager,
	channels contract.ChannelRegistry,
	mode domain.DispatchMode,
	maxTries int,
	sendTimeout time.Duration,
	reg *metrics.Registry,
	log *zap.Logger,
) *dispatcher {
	if mode == "" {
		mode = domain.DispatchFanout
	}
	return &dispatcher{
		dm:          dm,
		channels:    channels,
		mode:        mode,
		maxTries:    maxTries,
		sendTimeout: sendTimeout,
		metrics:     reg,
		log:         log,
	}
}

// Dispatch sends job's reminder through the user's enabled channels in
// priority order and records one history row per attempt. A user without
// channels is a successful no-op.
func (d *dispatcher) Dispatch(ctx context.Context, job contract.DispatchJob) (contract.DispatchOutcome, error) {
	var outcome contract.DispatchOutcome

	settings, err := d.dm.ChannelSetting().ListEnabledByUser(ctx, job.UserID)
	if err != nil {
		return outcome, fmt.Errorf("failed to list channels for user %d: %w", job.UserID, err)
	}

	if len(settings) == 0 {
		d.log.Debug("no enabled channels, nothing to dispatch",
			zap.Int64("user_id", job.UserID),
			zap.Int64("schedule_id", job.ScheduleID),
		)
		return outcome, nil
	}

	msg := buildMessage(job)

	// first_success failures are recorded after the loop; a later success
	// supersedes them
	var held []failedAttempt

	for _, setting := range settings {
		outcome.Attempted++

		sendErr := d.SendOne(ctx, setting, msg)
		status := d.firstAttemptStatus(sendErr)

		if sendErr != nil {
			outcome.Failed++
			d.log.Warn("delivery failed",
				zap.Int64("user_id", job.UserID),
				zap.String("channel", setting.Channel),
				zap.String("status", string(status)),
				zap.Error(sendErr),
			)
			if d.mode == domain.DispatchFirstSuccess {
				held = append(held, failedAttempt{setting: setting, status: status, err: sendErr})
				continue
			}
			d.record(ctx, setting, msg, status, sendErr)
			continue
		}

		outcome.Sent++
		if d.mode == domain.DispatchFirstSuccess {
			for _, f := range held {
				d.record(ctx, f.setting, msg, domain.StatusAbandoned, fmt.Errorf("superseded by %s: %w", setting.Channel, f.err))
			}
			held = nil
			d.record(ctx, setting, msg, status, nil)
			break
		}
		d.record(ctx, setting, msg, status, nil)
	}

	for _, f := range held {
		d.record(ctx, f.setting, msg, f.status, f.err)
	}

	d.log.Info("dispatch finished",
		zap.Int64("user_id", job.UserID),
		zap.Int64("schedule_id", job.ScheduleID),
		zap.String("target_date", msg.TargetDate),
		zap.Int("attempted", outcome.Attempted),
		zap.Int("sent", outcome.Sent),
		zap.Int("failed", outcome.Failed),
	)

	return outcome, nil
}

// SendOne validates the stored config and performs a single send bounded by
// the send timeout. Errors are always a ValidationError or a DeliveryError.
func (d *dispatcher) SendOne(ctx context.Context, setting *entity.ChannelSetting, msg contract.Message) error {
	ch, err := d.channels.Get(setting.Channel)
	if err != nil {
		return err
	}

	if err := ch.Validate(setting.Config); err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	err = ch.Send(sendCtx, setting.Config, msg)
	if err == nil {
		return nil
	}

	var de *domain.DeliveryError
	if errors.As(err, &de) || domain.IsValidation(err) {
		return err
	}
	return domain.Transient(setting.Channel, err)
}

func (d *dispatcher) firstAttemptStatus(sendErr error) domain.NotificationStatus {
	switch {
	case sendErr == nil:
		return domain.StatusSent
	case domain.IsTerminal(sendErr), d.maxTries <= 1:
		return domain.StatusAbandoned
	default:
		return domain.StatusFailed
	}
}

// record writes the history row even when the job context is already done.
func (d *dispatcher) record(ctx context.Context, setting *entity.ChannelSetting, msg contract.Message, status domain.NotificationStatus, sendErr error) {
	n := &entity.Notification{
		UserID:           setting.UserID,
		Channel:          setting.Channel,
		ChannelSettingID: setting.ID,
		Occasion:         msg.Occasion,
		TargetDate:       msg.TargetDate,
		Title:            msg.Title,
		Body:             msg.Body,
		Status:           status,
		AttemptCount:     1,
		LastError:        errorText(sendErr),
	}

	if err := d.dm.Notification().Create(context.WithoutCancel(ctx), n); err != nil {
		d.log.Error("failed to record delivery attempt",
			zap.Int64("user_id", setting.UserID),
			zap.String("channel", setting.Channel),
			zap.String("status", string(status)),
			zap.Error(err),
		)
	}

	d.metrics.Deliveries.WithLabelValues(setting.Channel, string(status)).Inc()
}

func buildMessage(job contract.DispatchJob) contract.Message {
	day := job.TargetDate.Format("Monday, Jan 2")

	body := fmt.Sprintf("Today (%s) is %s. Time to pick your outfit.", day, job.Occasion)
	if job.NotifyDayBefore {
		body = fmt.Sprintf("Tomorrow (%s) is %s. Pick your outfit tonight.", day, job.Occasion)
	}

	return contract.Message{
		Title:      "Outfit reminder: " + job.Occasion,
		Body:       body,
		Occasion:   job.Occasion,
		TargetDate: job.TargetDate.Format(domain.DateLayout),
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
