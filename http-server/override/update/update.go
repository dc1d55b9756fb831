package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type OverrideUpdater interface {
	UpdateOverride(ctx context.Context, active bool, message string) error
}

type Invalidator interface {
	Invalidate()
}

type Request struct {
	Active  bool   `json:"manualOverride"`
	Message string `json:"message"`
}

// UpdateOverride toggles away mode. Turning it on with an empty message is
// rejected, the board would otherwise show BORTA with nothing to say.
func UpdateOverride(log *slog.Logger, overrides OverrideUpdater, snapshots Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.override.UpdateOverride"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if req.Active && req.Message == "" {
			http.Error(w, "Away mode requires a message", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := overrides.UpdateOverride(ctx, req.Active, req.Message); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to update override")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		snapshots.Invalidate()

		render.JSON(w, r, map[string]string{"status": "updated"})
	}
}
