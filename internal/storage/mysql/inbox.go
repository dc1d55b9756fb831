package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"oppettider-backend/internal/storage"
)

func (s *Storage) GetInboxMessages(ctx context.Context) ([]*storage.InboxMessage, error) {
	const op = "storage.mysql.GetInboxMessages"

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, content, sender, is_read, created_at FROM inbox_messages ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var messages []*storage.InboxMessage
	for rows.Next() {
		msg := &storage.InboxMessage{}
		if err := rows.Scan(&msg.ID, &msg.Title, &msg.Content, &msg.Sender, &msg.IsRead, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return messages, nil
}

func (s *Storage) CreateInboxMessage(ctx context.Context, title, content, sender string) (*storage.InboxMessage, error) {
	const op = "storage.mysql.CreateInboxMessage"

	msg := &storage.InboxMessage{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Sender:    sender,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO inbox_messages (id, title, content, sender, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		msg.ID, msg.Title, msg.Content, msg.Sender, msg.IsRead, msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

func (s *Storage) MarkMessageAsRead(ctx context.Context, id string) error {
	const op = "storage.mysql.MarkMessageAsRead"

	res, err := s.db.ExecContext(ctx, "UPDATE inbox_messages SET is_read = TRUE WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: message %q: %w", op, id, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteInboxMessage(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteInboxMessage"

	res, err := s.db.ExecContext(ctx, "DELETE FROM inbox_messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: message %q: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
