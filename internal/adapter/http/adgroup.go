package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wise-ads/internal/core/domain"
)

func (h *Handler) handleListAdGroups(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	adGroups, err := h.adGroups.List(r.Context(), caller, chi.URLParam(r, "campaignID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, adGroups)
}

func (h *Handler) handleCreateAdGroup(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	var req domain.CreateAdGroupRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.adGroups.Create(r.Context(), caller, chi.URLParam(r, "campaignID"), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}
