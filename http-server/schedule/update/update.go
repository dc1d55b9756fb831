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

	"oppettider-backend/http-server/schedule/save"
	"oppettider-backend/internal/storage"
)

type SlotUpdater interface {
	UpdateTimeSlot(ctx context.Context, id, start, end string) error
}

type Invalidator interface {
	Invalidate()
}

type Request struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UpdateTimeSlot edits an existing open period.
func UpdateTimeSlot(log *slog.Logger, slots SlotUpdater, snapshots Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.UpdateTimeSlot"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing slot id", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		start, end, err := save.NormalizeSlot(req.Start, req.End)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := slots.UpdateTimeSlot(ctx, id, start, end); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.With(slog.String("op", op), slog.String("id", id)).Warn("Slot not found")
				http.Error(w, "Slot not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to update time slot")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		snapshots.Invalidate()

		render.JSON(w, r, map[string]string{"status": "updated"})
	}
}
