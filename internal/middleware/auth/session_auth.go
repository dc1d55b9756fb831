package auth

import (
	"context"
	"net/http"
	"strings"

	"oppettider-backend/internal/storage"
)

type ctxKey struct{}

// TokenResolver maps bearer tokens to signed-in users.
type TokenResolver interface {
	UserForToken(token string) (*storage.User, bool)
}

// RequireSession guards a route group with bearer-token auth.
func RequireSession(sessions TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				requireAuth(w)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				requireAuth(w)
				return
			}

			user, ok := sessions.UserForToken(strings.TrimPrefix(authHeader, "Bearer "))
			if !ok {
				requireAuth(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, user)))
		})
	}
}

// UserFromContext returns the signed-in user placed there by RequireSession.
func UserFromContext(ctx context.Context) (*storage.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*storage.User)
	return user, ok
}

func requireAuth(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="Staff"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
