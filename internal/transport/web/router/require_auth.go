package router

import (
	"net/http"

	"github.com/coachably/ranking-engine/internal/domain"
)

// requireAuthMiddleware rejects requests that reached an authenticated
// endpoint without any validator having established a user identity.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if domain.UserIDFromContext(ctx) == "" {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "rejected unauthenticated request", "path", r.URL.Path)
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
