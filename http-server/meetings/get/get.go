package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/storage"
)

type MeetingProvider interface {
	GetAllMeetings(ctx context.Context) ([]*storage.Meeting, error)
}

// GetAllMeetings lists the meeting calendar ordered by date and time.
func GetAllMeetings(log *slog.Logger, meetings MeetingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetings.GetAllMeetings"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		all, err := meetings.GetAllMeetings(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch meetings")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if all == nil {
			all = []*storage.Meeting{}
		}

		render.JSON(w, r, all)
	}
}
