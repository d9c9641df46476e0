// Package scheduler drives the periodic jobs of the notifier from cron
// expressions evaluated in UTC.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one periodic unit of work. now is the time the entry fired.
type Job func(ctx context.Context, now time.Time)

// Scheduler wraps a cron runner. A job never overlaps its own previous run:
// an activation that fires while the previous one is still running waits for
// it and then runs with its own activation time. A panicking job is recovered
// and logged.
type Scheduler struct {
	cron    *cron.Cron
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	entries map[string]cron.EntryID
}

// New creates a scheduler. Nothing runs until Start.
func New(log *zap.Logger) *Scheduler {
	cl := cronLogger{log: log.Sugar()}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[string]cron.EntryID),
	}
}

// Register adds job under name using a standard five-field cron spec.
func (s *Scheduler) Register(name, spec string, job Job) error {
	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("job %s already registered", name)
	}

	id, err := s.cron.AddJob(spec, delayed(name, job, s))
	if err != nil {
		return fmt.Errorf("invalid spec %q for job %s: %w", spec, name, err)
	}

	s.entries[name] = id
	return nil
}

// delayed serialises the runs of job. The activation time is taken before
// waiting, so a late run still sees the minute it was due for.
func delayed(name string, job Job, s *Scheduler) cron.FuncJob {
	var running sync.Mutex

	return func() {
		now := time.Now().UTC()

		running.Lock()
		defer running.Unlock()

		if s.ctx.Err() != nil {
			return
		}
		if waited := time.Since(now); waited > time.Second {
			s.log.Warn("cron job delayed by its previous run",
				zap.String("job", name),
				zap.Time("now", now),
				zap.Duration("waited", waited),
			)
		}

		s.log.Debug("cron job firing", zap.String("job", name), zap.Time("now", now))
		job(s.ctx, now)
	}
}

// Next returns the next activation of the named job, or zero if unknown or
// the scheduler is not running.
func (s *Scheduler) Next(name string) time.Time {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

func (s *Scheduler) Start() {
	s.log.Info("scheduler starting", zap.Int("jobs", len(s.entries)))
	s.cron.Start()
}

// Stop prevents new activations and waits for running jobs until ctx ends,
// after which their context is cancelled.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.log.Info("scheduler stopping")
	stopped := s.cron.Stop()

	select {
	case <-stopped.Done():
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		return ctx.Err()
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
