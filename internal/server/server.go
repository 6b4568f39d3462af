// Package server SembConnect
//
// SembConnect is an internal communications service: bulletins, polls,
// grievances, suggestions and appreciations for an organization, plus a
// compatibility surface for the legacy notifications mock API.
//
//	Schemes: https
//	BasePath: /v1
//	Version: 1.0.0
//
//	Produces:
//	- application/json
//	Consumes:
//	- application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/orgablast/sembconnect/internal/middleware"
	"github.com/orgablast/sembconnect/internal/service"
	"github.com/orgablast/sembconnect/internal/session"
	"github.com/orgablast/sembconnect/internal/suggest"
)

const maxBodySize = 64 * 1024

const statsCacheTTL = time.Minute

type server struct {
	s   service.Service
	sg  suggest.Suggester
	now func() time.Time

	// mockLatency delays the legacy mock endpoints the way the frontend
	// stub they replace did.
	mockLatency time.Duration
}

// Option ...
type Option func(*server)

// WithClock overrides the server clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *server) {
		s.now = now
	}
}

// WithMockLatency sets the artificial delay of the legacy mock endpoints.
func WithMockLatency(d time.Duration) Option {
	return func(s *server) {
		s.mockLatency = d
	}
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, sg suggest.Suggester, r chi.Router, timeout time.Duration, opts ...Option) {
	r.Use(
		middleware.RequestID,
		loggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		bodyLimiterMiddleware(maxBodySize),
		session.Middleware(s),
	)

	srv := server{
		s:           s,
		sg:          sg,
		now:         time.Now,
		mockLatency: 500 * time.Millisecond,
	}
	for _, o := range opts {
		o(&srv)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/users", srv.listUsers)
		r.Get("/employees", srv.listEmployees)
		r.Get("/stats", mm.Cached(statsCacheTTL, srv.getStats))

		r.Get("/posts", srv.listPosts)
		r.Get("/posts/featured", srv.listFeaturedPosts)
		r.Get("/posts/{id}", srv.getPost)

		r.Get("/polls", srv.listPolls)
		r.Get("/suggestions", srv.listSuggestions)
		r.Get("/appreciations", srv.listAppreciations)

		r.Group(func(r chi.Router) {
			r.Use(session.RequireActor)

			r.Post("/posts", srv.createPost)
			r.Put("/posts/{id}", srv.updatePost)
			r.Delete("/posts/{id}", srv.deletePost)
			r.Post("/posts/{id}/like", srv.togglePostLike)
			r.Post("/posts/{id}/view", srv.markPostViewed)
			r.Post("/posts/{id}/comments", srv.addPostComment)
			r.Post("/posts/{id}/comments/{commentID}/replies", srv.addPostReply)

			r.Post("/polls", srv.createPoll)
			r.Post("/polls/{id}/vote", srv.vote)

			r.Get("/grievances", srv.listGrievances)
			r.Get("/grievances/{id}", srv.getGrievance)
			r.Post("/grievances", srv.createGrievance)
			r.Post("/grievances/{id}/status", srv.changeGrievanceStatus)
			r.Post("/grievances/{id}/comments", srv.addGrievanceComment)

			r.Post("/suggestions", srv.createSuggestion)
			r.Post("/suggestions/{id}/upvote", srv.toggleSuggestionUpvote)
			r.Post("/suggestions/{id}/comments", srv.addSuggestionComment)
			r.Post("/suggestions/{id}/comments/{commentID}/replies", srv.addSuggestionReply)

			r.Post("/appreciations", srv.createAppreciation)
			r.Post("/appreciations/{id}/like", srv.toggleAppreciationLike)

			r.Post("/groupings", srv.suggestGroupings)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/notifications", srv.legacyListNotifications)
		r.Post("/notifications", srv.legacyCreateNotification)
		r.Get("/users", srv.legacyListUsers)
	})
}
