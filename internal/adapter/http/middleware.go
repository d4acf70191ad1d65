package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"wise-ads/internal/core/domain"
)

type contextKey struct{}

var identityKey contextKey

// identityFrom returns the identity stored by requireAuth. The second
// return is false only when the middleware never ran.
func identityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}

func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
			return
		}
		identity, err := h.tokens.Parse(raw)
		if err != nil {
			h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid token"})
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok || identity.Role != domain.RoleAdmin {
			h.writeJSON(w, http.StatusForbidden, errorBody{Error: "access denied"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
