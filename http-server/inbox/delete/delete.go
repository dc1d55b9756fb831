package delete

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

type MessageDeleter interface {
	DeleteInboxMessage(ctx context.Context, id string) error
}

// DeleteInboxMessage removes a suggestion for good.
func DeleteInboxMessage(log *slog.Logger, inbox MessageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inbox.DeleteInboxMessage"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing message id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := inbox.DeleteInboxMessage(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Message not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to delete message")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
