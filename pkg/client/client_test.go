package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, failCreate bool) *httptest.Server {
	t.Helper()

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/users" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]User{
				{ID: "user-1", Name: "Alex Hartman", Role: "Admin"},
			})
		case r.URL.Path == "/api/notifications" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]Notification{
				{ID: "bulletin-1", Title: "Retreat"},
			})
		case r.URL.Path == "/api/notifications" && r.Method == http.MethodPost:
			if failCreate {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			var p CreateNotificationParams
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Notification{
				ID:       "notification-1762327507000",
				Author:   p.Author,
				Category: p.Category,
				Title:    p.Title,
				Content:  p.Content,
				LikedBy:  []string{},
				Comments: []Comment{},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(s.Close)

	return s
}

func TestClient_Users(t *testing.T) {
	s := newServer(t, false)

	users, err := New(s.URL).Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alex Hartman", users[0].Name)
}

func TestClient_Notifications(t *testing.T) {
	s := newServer(t, false)

	posts, err := New(s.URL).Notifications(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "bulletin-1", posts[0].ID)
}

func TestOptimisticFeed_Create(t *testing.T) {
	s := newServer(t, false)

	f := NewOptimisticFeed(New(s.URL))
	require.NoError(t, f.Refresh(context.Background()))
	require.Len(t, f.Notifications(), 1)

	created, err := f.Create(context.Background(), CreateNotificationParams{
		Author:   Author{Name: "Alex Hartman"},
		Category: "Organization",
		Title:    "Town Hall",
		Content:  "Friday at noon.",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "notification-"))

	posts := f.Notifications()
	require.Len(t, posts, 2)
	// the pending record got reconciled with the server echo
	assert.Equal(t, created.ID, posts[0].ID)
}

func TestOptimisticFeed_Create_rollsBackOnFailure(t *testing.T) {
	s := newServer(t, true)

	f := NewOptimisticFeed(New(s.URL))
	require.NoError(t, f.Refresh(context.Background()))

	_, err := f.Create(context.Background(), CreateNotificationParams{
		Author: Author{Name: "Alex Hartman"},
		Title:  "Doomed",
	})
	require.Error(t, err)

	posts := f.Notifications()
	require.Len(t, posts, 1)
	assert.Equal(t, "bulletin-1", posts[0].ID)
}
