package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/service"
	"github.com/orgablast/sembconnect/internal/session"
	"github.com/orgablast/sembconnect/internal/views"
)

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("failed to decode json")
	}

	return nil
}

// writeServiceError maps well-known service errors to http statuses.
func (s server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		writeInternalError(r.Context(), w, err.Error())
	}
}

func categoryFromQuery(q url.Values) *entities.Category {
	if v := q.Get("category"); v != "" {
		c := entities.Category(v)
		return &c
	}

	return nil
}

func (s server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.s.ListUsers(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, users)
}

func (s server) listEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.s.ListEmployees(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, employees)
}

func (s server) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.s.Stats(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, stats)
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.s.ListPosts(r.Context(), service.ListPostsParams{
		Query:    r.URL.Query().Get("query"),
		Category: categoryFromQuery(r.URL.Query()),
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if r.URL.Query().Get("sortBy") == "createdAt" {
		posts = views.SortPostsByCreatedAt(posts)
	}

	writeOK(w, http.StatusOK, newPostViews(posts, s.now()))
}

func (s server) listFeaturedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.s.FeaturedPosts(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPostViews(posts, s.now()))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPostView(*p, s.now()))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	p, err := s.s.CreatePost(r.Context(), actor, service.CreatePostParams{
		Category:     req.Category,
		Title:        req.Title,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		Link:         req.Link,
		ScheduledFor: req.ScheduledFor,
		EndDate:      req.EndDate,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, newPostView(*p, s.now()))
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	var req entities.Post
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = chi.URLParam(r, "id")

	actor, _ := session.Actor(r.Context())

	p, err := s.s.UpdatePost(r.Context(), actor, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPostView(*p, s.now()))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	if err := s.s.DeletePost(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) togglePostLike(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	p, err := s.s.TogglePostLike(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPostView(*p, s.now()))
}

func (s server) markPostViewed(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	p, err := s.s.MarkPostViewed(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPostView(*p, s.now()))
}

func (s server) addPostComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	p, err := s.s.AddPostComment(r.Context(), actor, chi.URLParam(r, "id"), req.Text)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, newPostView(*p, s.now()))
}

func (s server) addPostReply(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	p, err := s.s.AddPostReply(r.Context(), actor, chi.URLParam(r, "id"), chi.URLParam(r, "commentID"), req.Text)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, newPostView(*p, s.now()))
}

func (s server) listPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := s.s.ListPolls(r.Context(), service.ListPollsParams{
		Query:    r.URL.Query().Get("query"),
		Category: categoryFromQuery(r.URL.Query()),
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, polls)
}

func (s server) createPoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	p, err := s.s.CreatePoll(r.Context(), actor, service.CreatePollParams{
		Question: req.Question,
		Options:  req.Options,
		Category: req.Category,
		EndDate:  req.EndDate,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, p)
}

func (s server) vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	p, err := s.s.Vote(r.Context(), actor, chi.URLParam(r, "id"), req.OptionID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, p)
}

func (s server) listGrievances(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	grievances, err := s.s.ListGrievances(r.Context(), actor, r.URL.Query().Get("query"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, grievances)
}

func (s server) getGrievance(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	g, err := s.s.GetGrievance(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, g)
}

func (s server) createGrievance(w http.ResponseWriter, r *http.Request) {
	var req createGrievanceRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	g, err := s.s.CreateGrievance(r.Context(), actor, service.CreateGrievanceParams{
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, g)
}

func (s server) changeGrievanceStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	g, err := s.s.ChangeGrievanceStatus(r.Context(), actor, chi.URLParam(r, "id"), service.ChangeGrievanceStatusParams{
		Status:  req.Status,
		Comment: req.Comment,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, g)
}

func (s server) addGrievanceComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	g, err := s.s.AddGrievanceComment(r.Context(), actor, chi.URLParam(r, "id"), req.Text)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, g)
}

func (s server) listSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.s.ListSuggestions(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, suggestions)
}

func (s server) createSuggestion(w http.ResponseWriter, r *http.Request) {
	var req createSuggestionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	v, err := s.s.CreateSuggestion(r.Context(), actor, service.CreateSuggestionParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, v)
}

func (s server) toggleSuggestionUpvote(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	v, err := s.s.ToggleSuggestionUpvote(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, v)
}

func (s server) addSuggestionComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	v, err := s.s.AddSuggestionComment(r.Context(), actor, chi.URLParam(r, "id"), req.Text)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, v)
}

func (s server) addSuggestionReply(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	v, err := s.s.AddSuggestionReply(r.Context(), actor, chi.URLParam(r, "id"), chi.URLParam(r, "commentID"), req.Text)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, v)
}

func (s server) listAppreciations(w http.ResponseWriter, r *http.Request) {
	appreciations, err := s.s.ListAppreciations(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, appreciations)
}

func (s server) createAppreciation(w http.ResponseWriter, r *http.Request) {
	var req createAppreciationRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, _ := session.Actor(r.Context())

	a, err := s.s.CreateAppreciation(r.Context(), actor, service.CreateAppreciationParams{
		ToUserID: req.ToUserID,
		Message:  req.Message,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, a)
}

func (s server) toggleAppreciationLike(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.Actor(r.Context())

	a, err := s.s.ToggleAppreciationLike(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, a)
}

func (s server) suggestGroupings(w http.ResponseWriter, r *http.Request) {
	var req groupingsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	employees, err := s.s.ListEmployees(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	out, err := s.sg.Suggest(r.Context(), req.Content, employees)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to suggest groupings: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, out)
}
