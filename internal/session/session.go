// Package session resolves the acting user from the X-Actor-ID header.
// Identity here is a capability selector, not authentication.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/service"
)

// Header carries the selected actor's user id.
const Header = "X-Actor-ID"

type contextKey struct{}

// Resolver looks up a roster user by id.
type Resolver interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

// Actor extracts the resolved actor from ctx.
func Actor(ctx context.Context) (entities.User, bool) {
	u, ok := ctx.Value(contextKey{}).(entities.User)
	return u, ok
}

// WithActor returns a copy of ctx carrying u, for tests.
func WithActor(ctx context.Context, u entities.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// Middleware resolves the X-Actor-ID header through r and stores the actor in
// the request context. Requests without the header pass through untouched; an
// unknown id is rejected so mutations are never attributed to a ghost user.
func Middleware(r Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := req.Header.Get(Header)
			if id == "" {
				next.ServeHTTP(w, req)
				return
			}

			u, err := r.GetUser(req.Context(), id)
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					writeError(w, http.StatusUnauthorized, "unknown actor")
					return
				}

				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}

			next.ServeHTTP(w, req.WithContext(WithActor(req.Context(), *u)))
		})
	}
}

// RequireActor rejects requests that did not select an actor.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if _, ok := Actor(req.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "actor is required")
			return
		}

		next.ServeHTTP(w, req)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}
