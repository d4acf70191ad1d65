package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wise-ads/internal/core/domain"
)

type createKeywordsRequest struct {
	Keywords []domain.KeywordRequest `json:"keywords"`
}

func (h *Handler) handleListKeywords(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	keywords, err := h.keywords.List(r.Context(), caller, chi.URLParam(r, "adGroupID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, keywords)
}

func (h *Handler) handleCreateKeywords(w http.ResponseWriter, r *http.Request) {
	caller, _ := identityFrom(r.Context())
	var req createKeywordsRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.keywords.Create(r.Context(), caller, chi.URLParam(r, "adGroupID"), req.Keywords)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}
