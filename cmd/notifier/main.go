package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/channel"
	"github.com/diegoclair/wardrobe-notifier/internal/config"
	"github.com/diegoclair/wardrobe-notifier/internal/database"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/service"
	"github.com/diegoclair/wardrobe-notifier/internal/handlers"
	"github.com/diegoclair/wardrobe-notifier/internal/lease"
	"github.com/diegoclair/wardrobe-notifier/internal/logger"
	"github.com/diegoclair/wardrobe-notifier/internal/metrics"
	"github.com/diegoclair/wardrobe-notifier/internal/scheduler"
	"github.com/diegoclair/wardrobe-notifier/internal/worker"
	"github.com/diegoclair/wardrobe-notifier/migrator/sqlite"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Fatal("notifier stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logg *zap.Logger) error {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	logg.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg := metrics.NewRegistry(promReg)

	pool := worker.New(worker.Config{
		Workers:    cfg.MaxJobs,
		QueueSize:  cfg.QueueSize,
		JobTimeout: cfg.JobTimeout,
	}, logg.Named("worker"), reg)

	opts := service.Options{
		Channels: channel.New(cfg, nil),
		Queue:    pool,
		Pool:     pool,
		Metrics:  reg,
		Log:      logg,
	}

	if cfg.RedisURL != "" {
		owner := uuid.NewString()
		if host, err := os.Hostname(); err == nil {
			owner = host + "-" + owner
		}

		l, err := lease.NewFromURL(ctx, cfg.RedisURL, owner)
		if err != nil {
			return fmt.Errorf("failed to connect tick lease store: %w", err)
		}
		defer l.Close()

		opts.Lease = l
		logg.Info("tick lease enabled", zap.String("owner", owner))
	}

	svc := service.NewInstance(cfg, database.NewInstance(db), opts)

	sched := scheduler.New(logg.Named("scheduler"))
	jobs := []struct {
		name string
		spec string
		job  scheduler.Job
	}{
		{"poll", cfg.PollSpec, func(ctx context.Context, now time.Time) {
			if _, err := svc.Poller.Tick(ctx, now); err != nil {
				logg.Error("poller tick failed", zap.Error(err))
			}
		}},
		{"retry", cfg.RetrySpec, func(ctx context.Context, _ time.Time) {
			if _, err := svc.Retry.Pass(ctx); err != nil {
				logg.Error("retry pass failed", zap.Error(err))
			}
		}},
		{"health", cfg.HealthSpec, func(ctx context.Context, _ time.Time) {
			_ = svc.Maintenance.HealthCheck(ctx)
		}},
		{"profiles", cfg.ProfileSpec, func(ctx context.Context, _ time.Time) {
			err := pool.Submit(ctx, "profiles", func(jobCtx context.Context) error {
				_, err := svc.Maintenance.RefreshProfiles(jobCtx)
				return err
			})
			if err != nil {
				logg.Error("failed to enqueue profile refresh", zap.Error(err))
			}
		}},
	}
	for _, j := range jobs {
		if err := sched.Register(j.name, j.spec, j.job); err != nil {
			return err
		}
	}
	sched.Start()

	api := handlers.New(handlers.Services{
		User:     svc.User,
		Schedule: svc.Schedule,
		Settings: svc.Settings,
		History:  svc.History,
		Health:   svc.Maintenance,
	}, logg.Named("http"))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.Routes(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{Registry: promReg})),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logg.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logg.Info("shutting down")
	case err := <-serverErr:
		if err != nil {
			logg.Error("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// stop producers before draining the pool
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Warn("http shutdown", zap.Error(err))
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		logg.Warn("scheduler shutdown", zap.Error(err))
	}
	if err := pool.Shutdown(shutdownCtx); err != nil {
		logg.Warn("worker pool shutdown", zap.Error(err))
	}

	return nil
}
