package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"oppettider-backend/internal/storage"
)

type MockUserProvider struct {
	mock.Mock
}

func (m *MockUserProvider) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.User), args.Error(1)
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestSignIn_Success(t *testing.T) {
	users := new(MockUserProvider)
	users.On("GetUserByUsername", mock.Anything, "lima").Return(&storage.User{
		ID:           "u1",
		Username:     "lima",
		PasswordHash: hash(t, "limahby"),
		IsAdmin:      true,
		Name:         "Admin",
	}, nil)

	svc := New(users, time.Hour)

	user, token, err := svc.SignIn(context.Background(), "lima", "limahby")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Name)
	assert.True(t, user.IsAdmin)
	require.NotEmpty(t, token)

	resolved, ok := svc.UserForToken(token)
	require.True(t, ok)
	assert.Equal(t, "lima", resolved.Username)
}

func TestSignIn_WrongPassword(t *testing.T) {
	users := new(MockUserProvider)
	users.On("GetUserByUsername", mock.Anything, "lima").Return(&storage.User{
		Username:     "lima",
		PasswordHash: hash(t, "limahby"),
	}, nil)

	svc := New(users, time.Hour)

	_, _, err := svc.SignIn(context.Background(), "lima", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_UnknownUser(t *testing.T) {
	users := new(MockUserProvider)
	users.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, storage.ErrNotFound)

	svc := New(users, time.Hour)

	_, _, err := svc.SignIn(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOut(t *testing.T) {
	users := new(MockUserProvider)
	users.On("GetUserByUsername", mock.Anything, "lima").Return(&storage.User{
		Username:     "lima",
		PasswordHash: hash(t, "limahby"),
	}, nil)

	svc := New(users, time.Hour)

	_, token, err := svc.SignIn(context.Background(), "lima", "limahby")
	require.NoError(t, err)

	svc.SignOut(token)

	_, ok := svc.UserForToken(token)
	assert.False(t, ok)

	// Signing out twice is harmless.
	svc.SignOut(token)
}
