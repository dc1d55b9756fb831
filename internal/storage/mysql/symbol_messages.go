package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oppettider-backend/internal/storage"
)

// Symbol messages live in a singleton row, always id 1.
const symbolMessagesRowID = 1

// GetSymbolMessages reads the per-state display texts. A missing row is not
// an error, the board falls back to empty texts until someone saves them.
func (s *Storage) GetSymbolMessages(ctx context.Context) (storage.SymbolMessages, error) {
	const op = "storage.mysql.GetSymbolMessages"

	var messages storage.SymbolMessages
	err := s.db.QueryRowContext(ctx,
		"SELECT open_message, closed_message, away_message FROM symbol_messages WHERE id = ?",
		symbolMessagesRowID,
	).Scan(&messages.OpenMessage, &messages.ClosedMessage, &messages.AwayMessage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.SymbolMessages{}, nil
		}
		return storage.SymbolMessages{}, fmt.Errorf("%s: %w", op, err)
	}

	return messages, nil
}

// SaveSymbolMessage updates the text for one symbol kind, creating the
// singleton row when it does not exist yet.
func (s *Storage) SaveSymbolMessage(ctx context.Context, kind, message string) error {
	const op = "storage.mysql.SaveSymbolMessage"

	var column string
	switch kind {
	case storage.SymbolOpen:
		column = "open_message"
	case storage.SymbolClosed:
		column = "closed_message"
	case storage.SymbolAway:
		column = "away_message"
	default:
		return fmt.Errorf("%s: unknown symbol kind %q", op, kind)
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT IGNORE INTO symbol_messages (id, open_message, closed_message, away_message) VALUES (?, '', '', '')",
		symbolMessagesRowID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// column is one of three fixed names, never user input.
	query := fmt.Sprintf("UPDATE symbol_messages SET %s = ? WHERE id = ?", column)
	if _, err := s.db.ExecContext(ctx, query, message, symbolMessagesRowID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
