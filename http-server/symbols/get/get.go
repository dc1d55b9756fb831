package get

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

type SymbolURLProvider interface {
	ViewURL(ctx context.Context, kind string) (string, error)
}

type MessagesProvider interface {
	GetSymbolMessages(ctx context.Context) (storage.SymbolMessages, error)
}

// GetSymbolURL serves a presigned link to the uploaded symbol image.
func GetSymbolURL(log *slog.Logger, symbols SymbolURLProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.symbols.GetSymbolURL"

		kind := chi.URLParam(r, "kind")
		if !storage.ValidSymbolKind(kind) {
			http.Error(w, "Unknown symbol kind", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		url, err := symbols.ViewURL(ctx, kind)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Symbol not uploaded", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("kind", kind), slog.String("error", err.Error())).Error("Failed to resolve symbol url")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"url": url})
	}
}

// GetSymbolMessages serves the display texts for all three board states.
func GetSymbolMessages(log *slog.Logger, messages MessagesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.symbols.GetSymbolMessages"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		texts, err := messages.GetSymbolMessages(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch symbol messages")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, texts)
	}
}
