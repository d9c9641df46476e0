package service

import (
	"github.com/diegoclair/wardrobe-notifier/internal/config"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/metrics"
	"github.com/diegoclair/wardrobe-notifier/pkg/models"
	"go.uber.org/zap"
)

// Options carries the collaborators the services need besides storage.
type Options struct {
	Channels contract.ChannelRegistry
	Queue    contract.JobQueue
	Pool     PoolStats

	// optional
	Lease     contract.TickLease
	Refresher contract.ProfileRefresher

	Metrics *metrics.Registry
	Log     *zap.Logger
}

type Instance struct {
	User        contract.UserService
	Schedule    contract.ScheduleService
	Settings    contract.SettingsService
	History     contract.HistoryService
	Dispatcher  contract.Dispatcher
	Poller      *Poller
	Retry       *RetryCoordinator
	Maintenance *Maintenance
}

func NewInstance(cfg config.Config, dm contract.DataManager, opts Options) *Instance {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	dispatcher := newDispatcher(dm, opts.Channels, cfg.DispatchMode, cfg.MaxTries, cfg.SendTimeout, opts.Metrics, log.Named("dispatcher"))

	ntfy := models.NtfyDefaults{
		Server:   cfg.NtfyServer,
		HasToken: cfg.NtfyToken != "",
	}

	return &Instance{
		User:        newUserService(dm),
		Schedule:    newScheduleService(dm, log.Named("schedules")),
		Settings:    newSettingsService(dm, opts.Channels, dispatcher, ntfy, log.Named("settings")),
		History:     newHistoryService(dm),
		Dispatcher:  dispatcher,
		Poller:      newPoller(dm, opts.Queue, dispatcher, opts.Lease, opts.Metrics, log.Named("poller")),
		Retry:       newRetryCoordinator(dm, opts.Queue, dispatcher, cfg.MaxTries, cfg.RetryBatch, opts.Metrics, log.Named("retry")),
		Maintenance: newMaintenance(dm, opts.Pool, opts.Refresher, opts.Metrics, log.Named("maintenance")),
	}
}
