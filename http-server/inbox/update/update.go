package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"oppettider-backend/internal/storage"
)

type ReadMarker interface {
	MarkMessageAsRead(ctx context.Context, id string) error
}

// MarkMessageAsRead flags one suggestion as handled.
func MarkMessageAsRead(log *slog.Logger, inbox ReadMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inbox.MarkMessageAsRead"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing message id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := inbox.MarkMessageAsRead(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Message not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to mark message as read")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "read"})
	}
}
