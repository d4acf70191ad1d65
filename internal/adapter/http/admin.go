package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}

func (h *Handler) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	if err := h.admin.DeleteUser(r.Context(), caller, chi.URLParam(r, "userID")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAdminListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.admin.ListAllCampaigns(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleAdminUserCampaigns(w http.ResponseWriter, r *http.Request) {
	ids, err := h.admin.ListUserCampaigns(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ids)
}

type grantRequest struct {
	CampaignID string `json:"campaignId"`
}

func (h *Handler) handleAdminGrantCampaign(w http.ResponseWriter, r *http.Request) {
	var req grantRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.admin.GrantCampaign(r.Context(), chi.URLParam(r, "userID"), req.CampaignID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAdminRevokeCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.RevokeCampaign(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "campaignID")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
