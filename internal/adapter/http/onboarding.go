package httpadapter

import "net/http"

type onboardingRequest struct {
	WebsiteURL string `json:"websiteUrl"`
}

func (h *Handler) handleOnboardingGenerate(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if !h.decode(w, r, &req) {
		return
	}
	plan, err := h.onboarding.Generate(r.Context(), req.WebsiteURL)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}
