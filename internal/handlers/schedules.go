package handlers

import (
	"net/http"

	"github.com/diegoclair/wardrobe-notifier/pkg/models"
)

func (h *Handler) listSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.svc.Schedule.List(r.Context(), userFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (h *Handler) createSchedule(w http.ResponseWriter, r *http.Request) {
	var in models.ScheduleInput
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	schedule, err := h.svc.Schedule.Create(r.Context(), userFrom(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, schedule)
}

func (h *Handler) getSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	schedule, err := h.svc.Schedule.Get(r.Context(), userFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (h *Handler) updateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var in models.ScheduleUpdate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	schedule, err := h.svc.Schedule.Update(r.Context(), userFrom(r.Context()), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (h *Handler) deleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.svc.Schedule.Delete(r.Context(), userFrom(r.Context()), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Schedule deleted"})
}
