package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"oppettider-backend/http-server/meetings/save"
	"oppettider-backend/internal/storage"
)

type MeetingUpdater interface {
	UpdateMeeting(ctx context.Context, meeting storage.Meeting) error
}

// UpdateMeeting edits a calendar entry, including moving it between
// scheduled/completed/cancelled.
func UpdateMeeting(log *slog.Logger, meetings MeetingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetings.UpdateMeeting"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing meeting id", http.StatusBadRequest)
			return
		}

		var req save.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if err := save.ValidateMeeting(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Status == "" {
			req.Status = storage.MeetingScheduled
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := meetings.UpdateMeeting(ctx, storage.Meeting{
			ID:          id,
			Title:       req.Title,
			Date:        req.Date,
			Time:        req.Time,
			Description: req.Description,
			Status:      req.Status,
		})
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Meeting not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to update meeting")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "updated"})
	}
}
