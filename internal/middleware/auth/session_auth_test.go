package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"oppettider-backend/internal/storage"
)

type staticResolver struct {
	token string
	user  *storage.User
}

func (r *staticResolver) UserForToken(token string) (*storage.User, bool) {
	if token == r.token {
		return r.user, true
	}
	return nil, false
}

func protected(t *testing.T, resolver TokenResolver) (http.Handler, *bool) {
	t.Helper()
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		user, ok := UserFromContext(r.Context())
		assert.True(t, ok)
		assert.NotNil(t, user)
		w.WriteHeader(http.StatusOK)
	})
	return RequireSession(resolver)(next), &reached
}

func TestRequireSession_ValidToken(t *testing.T) {
	resolver := &staticResolver{token: "good", user: &storage.User{Username: "lima"}}
	handler, reached := protected(t, resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/inbox", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, *reached)
}

func TestRequireSession_Rejects(t *testing.T) {
	resolver := &staticResolver{token: "good", user: &storage.User{Username: "lima"}}

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic bGltYTpsaW1haGJ5"},
		{"unknown token", "Bearer stale"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler, reached := protected(t, resolver)

			req := httptest.NewRequest(http.MethodGet, "/api/inbox", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, *reached)
		})
	}
}
