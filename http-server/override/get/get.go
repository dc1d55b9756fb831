package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/storage"
)

type OverrideProvider interface {
	GetOverride(ctx context.Context) (storage.Override, error)
}

// GetOverride serves the away-mode flag and message.
func GetOverride(log *slog.Logger, overrides OverrideProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.override.GetOverride"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		override, err := overrides.GetOverride(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch override")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, override)
	}
}
