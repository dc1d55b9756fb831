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

type MeetingDeleter interface {
	DeleteMeeting(ctx context.Context, id string) error
}

// DeleteMeeting removes a calendar entry.
func DeleteMeeting(log *slog.Logger, meetings MeetingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetings.DeleteMeeting"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing meeting id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := meetings.DeleteMeeting(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Meeting not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to delete meeting")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
