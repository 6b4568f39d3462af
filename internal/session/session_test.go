package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/service"
)

type resolverFunc func(ctx context.Context, id string) (*entities.User, error)

func (f resolverFunc) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return f(ctx, id)
}

var roster = resolverFunc(func(_ context.Context, id string) (*entities.User, error) {
	if id == "user-1" {
		return &entities.User{ID: "user-1", Name: "Alex Hartman", Role: entities.RoleAdmin}, nil
	}
	return nil, service.ErrNotFound
})

func TestMiddleware(t *testing.T) {
	var got entities.User
	var ok bool

	h := Middleware(roster)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = Actor(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("known actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(Header, "user-1")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, ok)
		assert.Equal(t, "Alex Hartman", got.Name)
	})

	t.Run("no header passes through anonymously", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, ok)
	})

	t.Run("unknown actor is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(Header, "user-9")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"unknown actor"}`, w.Body.String())
	})
}

func TestRequireActor(t *testing.T) {
	h := RequireActor(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(WithActor(req.Context(), entities.User{ID: "user-1"}))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
}
