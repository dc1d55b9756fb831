package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/storage"
)

type InboxProvider interface {
	GetInboxMessages(ctx context.Context) ([]*storage.InboxMessage, error)
}

type Response struct {
	Messages []*storage.InboxMessage `json:"messages"`
	Unread   int                     `json:"unread"`
}

// GetInboxMessages lists the suggestion box, newest first, with an unread
// counter for the badge.
func GetInboxMessages(log *slog.Logger, inbox InboxProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inbox.GetInboxMessages"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		messages, err := inbox.GetInboxMessages(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch inbox")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if messages == nil {
			messages = []*storage.InboxMessage{}
		}

		unread := 0
		for _, msg := range messages {
			if !msg.IsRead {
				unread++
			}
		}

		render.JSON(w, r, Response{Messages: messages, Unread: unread})
	}
}
