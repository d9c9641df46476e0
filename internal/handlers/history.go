package handlers

import (
	"net/http"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
)

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.svc.History.List(r.Context(), userFrom(r.Context()), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if page.Items == nil {
		page.Items = []*entity.Notification{}
	}
	writeJSON(w, http.StatusOK, page)
}
