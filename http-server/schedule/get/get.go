package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/storage"
)

type ScheduleProvider interface {
	GetSchedule(ctx context.Context) ([]storage.DaySchedule, error)
}

// GetSchedule serves all seven weekday records with their slots.
func GetSchedule(log *slog.Logger, schedule ScheduleProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.GetSchedule"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		days, err := schedule.GetSchedule(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch schedule")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, days)
	}
}
