package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/views"
)

// Error ...
type Error struct {
	Error string `json:"error"`
}

type createPostRequest struct {
	Category     entities.Category `json:"category"`
	Title        string            `json:"title"`
	Content      string            `json:"content"`
	ImageURL     string            `json:"imageUrl"`
	Link         *entities.Link    `json:"link"`
	ScheduledFor *time.Time        `json:"scheduledFor"`
	EndDate      *time.Time        `json:"endDate"`
}

type createPollRequest struct {
	Question string            `json:"question"`
	Options  []string          `json:"options"`
	Category entities.Category `json:"category"`
	EndDate  *time.Time        `json:"endDate"`
}

type createGrievanceRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type createSuggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createAppreciationRequest struct {
	ToUserID string `json:"toUserId"`
	Message  string `json:"message"`
}

type commentRequest struct {
	Text string `json:"text"`
}

type voteRequest struct {
	OptionID string `json:"optionId"`
}

type statusRequest struct {
	Status  entities.GrievanceStatus `json:"status"`
	Comment string                   `json:"comment"`
}

type groupingsRequest struct {
	Content string `json:"content"`
}

// postView is a post annotated with its lifecycle status badge.
type postView struct {
	entities.Post
	Status views.PostStatus `json:"status"`
}

func newPostView(p entities.Post, now time.Time) postView {
	return postView{
		Post:   p,
		Status: views.StatusOfPost(p, now),
	}
}

func newPostViews(posts []entities.Post, now time.Time) []postView {
	out := make([]postView, len(posts))
	for i, p := range posts {
		out[i] = newPostView(p, now)
	}

	return out
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeInternalError(context.Background(), w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) // nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter, message string) {
	logging(ctx).Error(message)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func logging(ctx context.Context) logrus.FieldLogger {
	l := logrus.WithField("layer", "server")
	if id := middleware.GetReqID(ctx); id != "" {
		l = l.WithField("request_id", id)
	}

	return l
}

// loggerMiddleware logs every request with the real client ip.
func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logging(r.Context()).WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"ip":       realip.FromRequest(r),
			"status":   ww.Status(),
			"duration": time.Since(start).String(),
		}).Info("request processed")
	})
}

// bodyLimiterMiddleware refuses to read more than size bytes of request body.
func bodyLimiterMiddleware(size int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}
