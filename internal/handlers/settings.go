package handlers

import (
	"net/http"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/diegoclair/wardrobe-notifier/pkg/models"
)

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings.List(r.Context(), userFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if settings == nil {
		settings = []*entity.ChannelSetting{}
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) createSetting(w http.ResponseWriter, r *http.Request) {
	var in models.ChannelSettingInput
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	setting, err := h.svc.Settings.Create(r.Context(), userFrom(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, setting)
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	setting, err := h.svc.Settings.Get(r.Context(), userFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *Handler) updateSetting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var in models.ChannelSettingUpdate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	setting, err := h.svc.Settings.Update(r.Context(), userFrom(r.Context()), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *Handler) deleteSetting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.svc.Settings.Delete(r.Context(), userFrom(r.Context()), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Notification setting deleted"})
}

// testSetting sends a one-off message. Failures come back as 400 with the
// provider's message; nothing is written to history.
func (h *Handler) testSetting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ok, message := h.svc.Settings.TestSend(r.Context(), userFrom(r.Context()), id)
	if !ok {
		writeDetail(w, http.StatusBadRequest, message)
		return
	}
	writeJSON(w, http.StatusOK, models.TestResult{Success: true, Message: message})
}

func (h *Handler) registerPushToken(w http.ResponseWriter, r *http.Request) {
	var in models.PushTokenRequest
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	setting, err := h.svc.Settings.RegisterPushToken(r.Context(), userFrom(r.Context()), in.PushToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *Handler) ntfyDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Settings.NtfyDefaults())
}
