package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oppettider-backend/internal/storage"
)

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	const op = "storage.mysql.GetUserByUsername"

	user := &storage.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, is_admin, name FROM users WHERE username = ?",
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: user %q: %w", op, username, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
