package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/storage"
)

type MessageCreator interface {
	CreateInboxMessage(ctx context.Context, title, content, sender string) (*storage.InboxMessage, error)
}

type Request struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Sender  string `json:"sender"`
}

// SaveInboxMessage drops a suggestion in the box. Open to everyone, the
// sender name is whatever the visitor typed.
func SaveInboxMessage(log *slog.Logger, inbox MessageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inbox.SaveInboxMessage"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if req.Title == "" || req.Content == "" {
			http.Error(w, "Title and content are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		msg, err := inbox.CreateInboxMessage(ctx, req.Title, req.Content, req.Sender)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to create inbox message")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, msg)
	}
}
