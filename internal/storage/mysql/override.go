package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oppettider-backend/internal/storage"
)

// The override is a singleton row, always id 1.
const overrideRowID = 1

// GetOverride reads the away-mode record, creating it with defaults on first
// access so callers never see a missing row.
func (s *Storage) GetOverride(ctx context.Context) (storage.Override, error) {
	const op = "storage.mysql.GetOverride"

	var override storage.Override
	err := s.db.QueryRowContext(ctx,
		"SELECT manual_override, message FROM overrides WHERE id = ?", overrideRowID,
	).Scan(&override.Active, &override.Message)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if err := s.prepareOverride(ctx); err != nil {
				return storage.Override{}, fmt.Errorf("%s: %w", op, err)
			}
			return storage.Override{Active: false, Message: storage.DefaultOverrideMessage}, nil
		}
		return storage.Override{}, fmt.Errorf("%s: %w", op, err)
	}

	return override, nil
}

func (s *Storage) UpdateOverride(ctx context.Context, active bool, message string) error {
	const op = "storage.mysql.UpdateOverride"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO overrides (id, manual_override, message) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE manual_override = VALUES(manual_override), message = VALUES(message)`,
		overrideRowID, active, message,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) prepareOverride(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT IGNORE INTO overrides (id, manual_override, message) VALUES (?, FALSE, ?)",
		overrideRowID, storage.DefaultOverrideMessage,
	)
	return err
}
