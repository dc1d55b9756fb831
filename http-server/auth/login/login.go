package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/service/auth"
	"oppettider-backend/internal/storage"
)

type Sessions interface {
	SignIn(ctx context.Context, username, password string) (*storage.User, string, error)
	SignOut(token string)
}

type Request struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Response struct {
	Token   string `json:"token"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// SignIn authenticates a staff member and returns a bearer token.
func SignIn(log *slog.Logger, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.SignIn"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if req.Username == "" || req.Password == "" {
			http.Error(w, "Username and password are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, token, err := sessions.SignIn(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				http.Error(w, "Invalid username or password", http.StatusUnauthorized)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to sign in")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.With(slog.String("op", op), slog.String("user", user.Username)).Info("User signed in")

		render.JSON(w, r, Response{
			Token:   token,
			Name:    user.Name,
			IsAdmin: user.IsAdmin,
		})
	}
}

// SignOut drops the caller's session token.
func SignOut(log *slog.Logger, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			sessions.SignOut(strings.TrimPrefix(authHeader, "Bearer "))
		}

		render.JSON(w, r, map[string]string{"status": "signed out"})
	}
}
