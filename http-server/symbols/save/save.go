package save

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"oppettider-backend/internal/storage"
)

// Uploads beyond this are rejected; the symbols are small PNG pictograms.
const maxSymbolBytes = 5 << 20

type SymbolUploader interface {
	Upload(ctx context.Context, kind string, image io.Reader, size int64) error
}

type MessageSaver interface {
	SaveSymbolMessage(ctx context.Context, kind, message string) error
}

type Invalidator interface {
	Invalidate()
}

// UploadSymbol replaces the PNG image for one board state. The body is the
// raw image, the way the frontend sends the canvas export.
func UploadSymbol(log *slog.Logger, symbols SymbolUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.symbols.UploadSymbol"

		kind := chi.URLParam(r, "kind")
		if !storage.ValidSymbolKind(kind) {
			http.Error(w, "Unknown symbol kind", http.StatusBadRequest)
			return
		}

		body := http.MaxBytesReader(w, r.Body, maxSymbolBytes)
		data, err := io.ReadAll(body)
		if err != nil {
			http.Error(w, "Image too large or unreadable", http.StatusBadRequest)
			return
		}
		if len(data) == 0 {
			http.Error(w, "Empty image", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		if err := symbols.Upload(ctx, kind, bytes.NewReader(data), int64(len(data))); err != nil {
			log.With(slog.String("op", op), slog.String("kind", kind), slog.String("error", err.Error())).Error("Failed to upload symbol")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]string{"status": "uploaded"})
	}
}

type MessageRequest struct {
	Message string `json:"message"`
}

// SaveSymbolMessage stores the display text for one board state.
func SaveSymbolMessage(log *slog.Logger, messages MessageSaver, snapshots Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.symbols.SaveSymbolMessage"

		kind := chi.URLParam(r, "kind")
		if !storage.ValidSymbolKind(kind) {
			http.Error(w, "Unknown symbol kind", http.StatusBadRequest)
			return
		}

		var req MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := messages.SaveSymbolMessage(ctx, kind, req.Message); err != nil {
			log.With(slog.String("op", op), slog.String("kind", kind), slog.String("error", err.Error())).Error("Failed to save symbol message")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		snapshots.Invalidate()

		render.JSON(w, r, map[string]string{"status": "saved"})
	}
}
