// Package handlers exposes the notification engine over JSON HTTP.
package handlers

import (
	"context"
	"net/http"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"go.uber.org/zap"
)

// HealthChecker reports whether the process can serve.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Services groups what the handlers call.
type Services struct {
	User     contract.UserService
	Schedule contract.ScheduleService
	Settings contract.SettingsService
	History  contract.HistoryService
	Health   HealthChecker
}

type Handler struct {
	svc Services
	log *zap.Logger
}

func New(svc Services, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes mounts every endpoint. metrics, when set, is served on /metrics.
func (h *Handler) Routes(metrics http.Handler) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/notifications/schedules", h.listSchedules)
	api.HandleFunc("POST /api/notifications/schedules", h.createSchedule)
	api.HandleFunc("GET /api/notifications/schedules/{id}", h.getSchedule)
	api.HandleFunc("PATCH /api/notifications/schedules/{id}", h.updateSchedule)
	api.HandleFunc("DELETE /api/notifications/schedules/{id}", h.deleteSchedule)

	api.HandleFunc("GET /api/notifications/settings", h.listSettings)
	api.HandleFunc("POST /api/notifications/settings", h.createSetting)
	api.HandleFunc("GET /api/notifications/settings/{id}", h.getSetting)
	api.HandleFunc("PATCH /api/notifications/settings/{id}", h.updateSetting)
	api.HandleFunc("DELETE /api/notifications/settings/{id}", h.deleteSetting)
	api.HandleFunc("POST /api/notifications/settings/{id}/test", h.testSetting)

	api.HandleFunc("POST /api/notifications/push-token", h.registerPushToken)
	api.HandleFunc("GET /api/notifications/history", h.listHistory)
	api.HandleFunc("GET /api/notifications/defaults/ntfy", h.ntfyDefaults)

	mux := http.NewServeMux()
	mux.Handle("/api/", h.withUser(api))
	mux.HandleFunc("GET /health", h.health)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	return h.withLogging(mux)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.svc.Health != nil {
		if err := h.svc.Health.HealthCheck(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
