package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/service/status"
	"oppettider-backend/internal/storage"
)

type SlotCreator interface {
	AddTimeSlot(ctx context.Context, dayID, start, end string) (*storage.TimeSlot, error)
}

type Invalidator interface {
	Invalidate()
}

type Request struct {
	DayID string `json:"dayId"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// NormalizeSlot checks that both times are well-formed HH:MM and that the
// slot does not end before it starts. The times come back re-rendered as
// zero-padded HH:MM, so "9:00" stores as "09:00" and stays comparable as
// text. Runs before any storage call.
func NormalizeSlot(start, end string) (string, string, error) {
	startMin, err := status.TimeToMinutes(start)
	if err != nil {
		return "", "", err
	}
	endMin, err := status.TimeToMinutes(end)
	if err != nil {
		return "", "", err
	}
	if startMin >= endMin {
		return "", "", errors.New("end time must be after start time")
	}
	return status.MinutesToTime(startMin), status.MinutesToTime(endMin), nil
}

// SaveTimeSlot adds an open period to a weekday.
func SaveTimeSlot(log *slog.Logger, slots SlotCreator, snapshots Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.SaveTimeSlot"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if req.DayID == "" {
			http.Error(w, "Missing required field 'dayId'", http.StatusBadRequest)
			return
		}
		start, end, err := NormalizeSlot(req.Start, req.End)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		slot, err := slots.AddTimeSlot(ctx, req.DayID, start, end)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.With(slog.String("op", op), slog.String("day_id", req.DayID)).Warn("Day not found")
				http.Error(w, "Day not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to add time slot")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		snapshots.Invalidate()

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, slot)
	}
}
