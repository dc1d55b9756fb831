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

type SlotDeleter interface {
	DeleteTimeSlot(ctx context.Context, id string) error
}

type Invalidator interface {
	Invalidate()
}

// DeleteTimeSlot removes an open period from its weekday. Other slots are
// untouched.
func DeleteTimeSlot(log *slog.Logger, slots SlotDeleter, snapshots Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.DeleteTimeSlot"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing slot id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := slots.DeleteTimeSlot(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.With(slog.String("op", op), slog.String("id", id)).Warn("Slot not found")
				http.Error(w, "Slot not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to delete time slot")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		snapshots.Invalidate()

		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
