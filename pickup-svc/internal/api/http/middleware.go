package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/service"
)

type claimsKey struct{}

// requireAuth reads a "Bearer <jwt>" Authorization header and stores the
// parsed claims on the request context.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Access denied")
			return
		}

		claims, err := h.Auth.ParseToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

func claimsFrom(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*service.Claims)
	return claims
}
