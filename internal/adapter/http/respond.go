package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError normalizes every failure shape crossing the use case
// boundary into the {status, error} contract. Full detail is logged
// server-side; the response never carries stack traces or internal
// identifiers, and denial never reveals whether the target exists.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		vErr   *domain.ValidationError
		adsErr *port.AdsError
	)
	switch {
	case errors.As(err, &vErr):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: vErr.Message})
	case errors.As(err, &adsErr):
		h.logger.Error("google ads rejection",
			slog.String("path", r.URL.Path),
			slog.Any("issues", adsErr.Issues),
			slog.String("message", adsErr.Message))
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: adsErr.UserMessage()})
	case errors.Is(err, port.ErrAccessDenied):
		h.writeJSON(w, http.StatusForbidden, errorBody{Error: "access denied"})
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, port.ErrIDUnrecoverable):
		h.writeJSON(w, http.StatusInternalServerError,
			errorBody{Error: "resource was created upstream but its id could not be read back"})
	case errors.Is(err, port.ErrEmailTaken):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: "email already registered"})
	case errors.Is(err, port.ErrOAuthAccount):
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "this account uses Google sign-in"})
	case errors.Is(err, port.ErrInvalidCredentials):
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid email or password"})
	case errors.Is(err, port.ErrSelfDelete):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "cannot delete your own account"})
	case errors.Is(err, port.ErrGenerationFailed):
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: "content generation failed"})
	default:
		h.logger.Error("internal error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return false
	}
	return true
}
