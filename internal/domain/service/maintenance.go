package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/metrics"
	"go.uber.org/zap"
)

// PoolStats exposes the job substrate's load for health reporting.
type PoolStats interface {
	Size() int
	QueueDepth() int
	ActiveWorkers() int
}

// Maintenance runs the periodic jobs that share the substrate with delivery
// but do not affect its correctness.
type Maintenance struct {
	dm        contract.DataManager
	pool      PoolStats
	refresher contract.ProfileRefresher
	metrics   *metrics.Registry
	log       *zap.Logger
}

func newMaintenance(dm contract.DataManager, pool PoolStats, refresher contract.ProfileRefresher, reg *metrics.Registry, log *zap.Logger) *Maintenance {
	if refresher == nil {
		refresher = &userCountRefresher{dm: dm, log: log}
	}
	return &Maintenance{
		dm:        dm,
		pool:      pool,
		refresher: refresher,
		metrics:   reg,
		log:       log,
	}
}

// HealthCheck pings the database and reports the pool load.
func (m *Maintenance) HealthCheck(ctx context.Context) error {
	fields := []zap.Field{}
	if m.pool != nil {
		fields = append(fields,
			zap.Int("workers", m.pool.Size()),
			zap.Int("active_workers", m.pool.ActiveWorkers()),
			zap.Int("queued_jobs", m.pool.QueueDepth()),
		)
	}

	if err := m.dm.Ping(ctx); err != nil {
		m.metrics.DatabaseUp.Set(0)
		m.log.Error("health check failed", append(fields, zap.Error(err))...)
		return fmt.Errorf("database unreachable: %w", err)
	}

	m.metrics.DatabaseUp.Set(1)
	m.log.Info("health check", fields...)
	return nil
}

// RefreshProfiles runs the learning profile refresher.
func (m *Maintenance) RefreshProfiles(ctx context.Context) (int, error) {
	n, err := m.refresher.RefreshProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to refresh profiles: %w", err)
	}

	m.metrics.ProfilesRefreshed.Add(float64(n))
	m.log.Info("learning profiles refreshed", zap.Int("profiles", n))
	return n, nil
}

// userCountRefresher stands in when no learning component is wired: it only
// reports how many users would be refreshed.
type userCountRefresher struct {
	dm  contract.DataManager
	log *zap.Logger
}

func (r *userCountRefresher) RefreshProfiles(ctx context.Context) (int, error) {
	n, err := r.dm.User().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	r.log.Debug("no profile refresher configured", zap.Int("users", n))
	return n, nil
}
