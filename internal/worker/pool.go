// Package worker runs submitted jobs on a fixed number of goroutines with a
// bounded queue and a per-job deadline.
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrPoolClosed is returned by Submit after Shutdown.
	ErrPoolClosed = errors.New("worker pool has been shut down")
)

// Config holds configuration options for creating a worker pool.
type Config struct {
	// Workers is the number of jobs executed concurrently. Must be > 0.
	Workers int

	// QueueSize bounds the number of jobs waiting for a worker. Must be > 0.
	QueueSize int

	// JobTimeout is the deadline applied to every job. Zero means none.
	JobTimeout time.Duration
}

type job struct {
	id   string
	name string
	fn   func(ctx context.Context) error
}

// Pool implements contract.JobQueue.
type Pool struct {
	cfg     Config
	log     *zap.Logger
	metrics *metrics.Registry

	queue        chan job
	shutdownCh   chan struct{}
	shutdownOnce sync.Once

	// jobs run under baseCtx, not under the submitter's context
	baseCtx context.Context
	cancel  context.CancelFunc

	mu         sync.RWMutex
	isShutdown bool
	active     atomic.Int64
	wg         sync.WaitGroup
}

// New creates a pool and starts its workers.
func New(cfg Config, log *zap.Logger, reg *metrics.Registry) *Pool {
	if cfg.Workers <= 0 {
		panic("worker count must be positive")
	}
	if cfg.QueueSize <= 0 {
		panic("queue size must be positive")
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		cfg:        cfg,
		log:        log,
		metrics:    reg,
		queue:      make(chan job, cfg.QueueSize),
		shutdownCh: make(chan struct{}),
		baseCtx:    baseCtx,
		cancel:     cancel,
	}

	if reg != nil {
		reg.WorkerPoolSize.Set(float64(cfg.Workers))
	}

	for i := 0; i < cfg.Workers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}

	return p
}

// Submit queues fn for execution. It blocks while the queue is full until ctx
// is done. The job itself does not inherit ctx.
func (p *Pool) Submit(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("job %s: function cannot be nil", name)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.isShutdown {
		return ErrPoolClosed
	}

	j := job{id: uuid.NewString(), name: name, fn: fn}

	select {
	case p.queue <- j:
	case <-ctx.Done():
		return fmt.Errorf("cannot submit job %s: %w", name, ctx.Err())
	}

	if p.metrics != nil {
		p.metrics.JobsSubmitted.WithLabelValues(name).Inc()
		p.metrics.WorkerPoolQueued.Set(float64(len(p.queue)))
	}
	p.log.Debug("job submitted", zap.String("job", name), zap.String("job_id", j.id))

	return nil
}

// Shutdown stops accepting jobs and waits for queued and running jobs to
// finish. When ctx ends first, running jobs are cancelled and ctx's error is
// returned once the workers have exited.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() {
		p.mu.Lock()
		p.isShutdown = true
		close(p.queue)
		p.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.cfg.Workers
}

// QueueDepth returns the number of jobs waiting for a worker.
func (p *Pool) QueueDepth() int {
	return len(p.queue)
}

// ActiveWorkers returns the number of workers currently running a job.
func (p *Pool) ActiveWorkers() int {
	return int(p.active.Load())
}

func (p *Pool) run(workerID int) {
	defer p.wg.Done()

	for j := range p.queue {
		p.execute(workerID, j)
	}
}

func (p *Pool) execute(workerID int, j job) {
	start := time.Now()
	p.active.Add(1)
	if p.metrics != nil {
		p.metrics.WorkerPoolActive.Set(float64(p.active.Load()))
		p.metrics.WorkerPoolQueued.Set(float64(len(p.queue)))
	}

	ctx := p.baseCtx
	if p.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.JobTimeout)
		defer cancel()
	}

	var err error
	result := "success"

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
			result = "panic"
			p.log.Error("job panicked",
				zap.String("job", j.name),
				zap.String("job_id", j.id),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()),
			)
		}

		duration := time.Since(start)
		p.active.Add(-1)
		if p.metrics != nil {
			p.metrics.WorkerPoolActive.Set(float64(p.active.Load()))
			p.metrics.JobsCompleted.WithLabelValues(j.name, result).Inc()
			p.metrics.JobDuration.WithLabelValues(j.name).Observe(duration.Seconds())
		}

		if err != nil && result != "panic" {
			p.log.Warn("job failed",
				zap.String("job", j.name),
				zap.String("job_id", j.id),
				zap.Int("worker", workerID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		p.log.Debug("job finished",
			zap.String("job", j.name),
			zap.String("job_id", j.id),
			zap.Int("worker", workerID),
			zap.Duration("duration", duration),
		)
	}()

	err = j.fn(ctx)
	if err != nil {
		result = "failure"
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result = "timeout"
		}
	}
}
