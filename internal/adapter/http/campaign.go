package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wise-ads/internal/core/domain"
)

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	campaigns, err := h.campaigns.List(r.Context(), caller)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	var req domain.CreateCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.campaigns.Create(r.Context(), caller, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	var req statusRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.campaigns.SetStatus(r.Context(), caller, chi.URLParam(r, "campaignID"), req.Status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
