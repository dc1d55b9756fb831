package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/service/status"
	"oppettider-backend/internal/storage"
)

type Snapshotter interface {
	Current(ctx context.Context) (status.BoardStatus, error)
}

type SymbolURLProvider interface {
	ViewURL(ctx context.Context, kind string) (string, error)
}

type Response struct {
	status.BoardStatus
	SymbolURL string `json:"symbolUrl,omitempty"`
}

// GetStatus serves the evaluated board state, the thing the public display
// polls once a minute.
func GetStatus(log *slog.Logger, snapshots Snapshotter, symbols SymbolURLProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.status.GetStatus"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		board, err := snapshots.Current(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to evaluate status")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		resp := Response{BoardStatus: board}

		// The symbol is decoration; a missing upload must not break the board.
		url, err := symbols.ViewURL(ctx, board.Status)
		if err == nil {
			resp.SymbolURL = url
		} else if !errors.Is(err, storage.ErrNotFound) {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Warn("Failed to resolve symbol url")
		}

		render.JSON(w, r, resp)
	}
}
