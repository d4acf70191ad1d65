package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wise-ads/internal/core/domain"
)

func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	var req domain.CreateAdRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.ads.Create(r.Context(), caller, chi.URLParam(r, "adGroupID"), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}
