package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"oppettider-backend/internal/storage"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// the login form cannot be used to probe for accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

type UserProvider interface {
	GetUserByUsername(ctx context.Context, username string) (*storage.User, error)
}

// Service signs staff in against the users table and hands out bearer tokens
// kept in memory with a TTL. Restarting the server signs everyone out, which
// is fine for a single-organization board.
type Service struct {
	users    UserProvider
	sessions *cache.Cache
	ttl      time.Duration
}

func New(users UserProvider, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: cache.New(ttl, 2*ttl),
		ttl:      ttl,
	}
}

// SignIn verifies the password and returns the user plus a session token.
func (s *Service) SignIn(ctx context.Context, username, password string) (*storage.User, string, error) {
	const op = "service.auth.SignIn"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.sessions.Set(token, *user, s.ttl)

	return user, token, nil
}

// SignOut drops the session. Unknown tokens are a no-op.
func (s *Service) SignOut(token string) {
	s.sessions.Delete(token)
}

// UserForToken resolves a bearer token to the signed-in user.
func (s *Service) UserForToken(token string) (*storage.User, bool) {
	val, ok := s.sessions.Get(token)
	if !ok {
		return nil, false
	}
	user := val.(storage.User)
	return &user, true
}
