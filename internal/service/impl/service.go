// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/service"
	"github.com/orgablast/sembconnect/internal/storage"
	"github.com/orgablast/sembconnect/internal/views"
)

type srv struct {
	s   storage.Storage
	now func() time.Time

	idMu   sync.Mutex
	lastMS int64
	idSeq  int
}

// New creates new instance of service.
func New(s storage.Storage) service.Service {
	return NewWithClock(s, time.Now)
}

// NewWithClock creates a service with an explicit clock, for tests.
func NewWithClock(s storage.Storage, now func() time.Time) service.Service {
	return &srv{
		s:   s,
		now: now,
	}
}

// newID builds a time-based id like bulletin-1762327507254. Ids minted within
// the same millisecond get a sequence suffix so creates never collide.
func (s *srv) newID(kind string) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	ms := s.now().UnixMilli()
	if ms == s.lastMS {
		s.idSeq++
		return fmt.Sprintf("%s-%d-%d", kind, ms, s.idSeq)
	}

	s.lastMS = ms
	s.idSeq = 0

	return fmt.Sprintf("%s-%d", kind, ms)
}

func (s *srv) author(actor entities.User) entities.Author {
	return entities.Author{Name: actor.Name, AvatarURL: actor.AvatarURL}
}

func requireText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", service.ErrInvalidRequest, field)
	}

	return v, nil
}

func validCategory(c entities.Category) error {
	if c != entities.CategoryOrganization && c != entities.CategoryEmployee {
		return fmt.Errorf("%w: invalid category", service.ErrInvalidRequest)
	}

	return nil
}

// requireCategoryCapability refuses organization-wide content from
// non-admins. Employee-category content is open to everyone.
func requireCategoryCapability(actor entities.User, c entities.Category) error {
	if c == entities.CategoryOrganization && actor.Role != entities.RoleAdmin {
		return fmt.Errorf("%w: only admins can publish organization content", service.ErrForbidden)
	}

	return nil
}

func (s *srv) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.s.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *srv) GetUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := s.s.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *srv) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	employees, err := s.s.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

func (s *srv) ListPosts(ctx context.Context, p service.ListPostsParams) ([]entities.Post, error) {
	posts, err := s.s.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return views.SortPosts(views.FilterPosts(posts, p.Query, p.Category)), nil
}

func (s *srv) FeaturedPosts(ctx context.Context) ([]entities.Post, error) {
	posts, err := s.s.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return views.FeaturedPosts(posts), nil
}

func (s *srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s *srv) CreatePost(ctx context.Context, actor entities.User, p service.CreatePostParams) (*entities.Post, error) {
	title, err := requireText("title", p.Title)
	if err != nil {
		return nil, err
	}

	content, err := requireText("content", p.Content)
	if err != nil {
		return nil, err
	}

	if err := validCategory(p.Category); err != nil {
		return nil, err
	}

	if err := requireCategoryCapability(actor, p.Category); err != nil {
		return nil, err
	}

	post := entities.Post{
		ID:           s.newID("bulletin"),
		Author:       s.author(actor),
		Category:     p.Category,
		Title:        title,
		Content:      content,
		ImageURL:     p.ImageURL,
		Link:         p.Link,
		LikedBy:      []string{},
		ViewedBy:     []string{},
		Comments:     []entities.Comment{},
		CreatedAt:    s.now(),
		ScheduledFor: p.ScheduledFor,
		EndDate:      p.EndDate,
	}

	if err := s.s.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &post, nil
}

func (s *srv) UpdatePost(ctx context.Context, actor entities.User, p entities.Post) (*entities.Post, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can edit posts", service.ErrForbidden)
	}

	if _, err := requireText("title", p.Title); err != nil {
		return nil, err
	}

	// wholesale replacement: the caller supplies the complete record
	updated, err := s.s.MutatePost(ctx, p.ID, func(entities.Post) entities.Post {
		return p
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

func (s *srv) DeletePost(ctx context.Context, actor entities.User, id string) error {
	if actor.Role != entities.RoleAdmin {
		return fmt.Errorf("%w: only admins can delete posts", service.ErrForbidden)
	}

	if err := s.s.DeletePost(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrNotFound
		}

		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (s *srv) TogglePostLike(ctx context.Context, actor entities.User, id string) (*entities.Post, error) {
	p, err := s.s.MutatePost(ctx, id, func(p entities.Post) entities.Post {
		return p.WithToggledLike(actor.ID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	return p, nil
}

func (s *srv) MarkPostViewed(ctx context.Context, actor entities.User, id string) (*entities.Post, error) {
	p, err := s.s.MutatePost(ctx, id, func(p entities.Post) entities.Post {
		return p.WithView(actor.ID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to mark viewed: %w", err)
	}

	return p, nil
}

func (s *srv) AddPostComment(ctx context.Context, actor entities.User, id, text string) (*entities.Post, error) {
	text, err := requireText("text", text)
	if err != nil {
		return nil, err
	}

	c := entities.Comment{
		ID:        s.newID("comment"),
		User:      s.author(actor),
		Text:      text,
		Timestamp: s.now(),
	}

	p, err := s.s.MutatePost(ctx, id, func(p entities.Post) entities.Post {
		return p.WithComment(c)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return p, nil
}

func (s *srv) AddPostReply(ctx context.Context, actor entities.User, id, commentID, text string) (*entities.Post, error) {
	text, err := requireText("text", text)
	if err != nil {
		return nil, err
	}

	r := entities.Reply{
		ID:        s.newID("reply"),
		User:      s.author(actor),
		Text:      text,
		Timestamp: s.now(),
	}

	p, err := s.s.MutatePost(ctx, id, func(p entities.Post) entities.Post {
		return p.WithReply(commentID, r)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to add reply: %w", err)
	}

	return p, nil
}

func (s *srv) ListPolls(ctx context.Context, p service.ListPollsParams) ([]entities.Poll, error) {
	polls, err := s.s.ListPolls(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}

	return views.SortPolls(views.FilterPolls(polls, p.Query, p.Category)), nil
}

func (s *srv) CreatePoll(ctx context.Context, actor entities.User, p service.CreatePollParams) (*entities.Poll, error) {
	question, err := requireText("question", p.Question)
	if err != nil {
		return nil, err
	}

	if err := validCategory(p.Category); err != nil {
		return nil, err
	}

	if err := requireCategoryCapability(actor, p.Category); err != nil {
		return nil, err
	}

	options := make([]entities.PollOption, 0, len(p.Options))
	id := s.newID("poll")
	for i, text := range p.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		options = append(options, entities.PollOption{
			ID:   fmt.Sprintf("%s-option-%d", id, i+1),
			Text: text,
		})
	}

	if len(options) < 2 {
		return nil, fmt.Errorf("%w: a poll needs at least two options", service.ErrInvalidRequest)
	}

	poll := entities.Poll{
		ID:        id,
		Question:  question,
		Options:   options,
		Author:    s.author(actor),
		Category:  p.Category,
		CreatedAt: s.now(),
		EndDate:   p.EndDate,
		VotedBy:   []string{},
	}

	if err := s.s.CreatePoll(ctx, poll); err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	return &poll, nil
}

// Vote counts the actor's first vote; repeat votes are absorbed silently and
// return the unchanged poll.
func (s *srv) Vote(ctx context.Context, actor entities.User, pollID, optionID string) (*entities.Poll, error) {
	p, err := s.s.MutatePoll(ctx, pollID, func(p entities.Poll) entities.Poll {
		return p.WithVote(optionID, actor.ID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to vote: %w", err)
	}

	return p, nil
}

func (s *srv) ListGrievances(ctx context.Context, actor entities.User, query string) ([]entities.Grievance, error) {
	grievances, err := s.s.ListGrievances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grievances: %w", err)
	}

	if actor.Role != entities.RoleAdmin {
		own := make([]entities.Grievance, 0, len(grievances))
		for _, g := range grievances {
			if g.EmployeeID == actor.ID {
				own = append(own, g)
			}
		}
		grievances = own
	}

	return views.SortGrievances(views.FilterGrievances(grievances, query)), nil
}

func (s *srv) GetGrievance(ctx context.Context, actor entities.User, id string) (*entities.Grievance, error) {
	g, err := s.s.GetGrievance(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get grievance: %w", err)
	}

	if actor.Role != entities.RoleAdmin && g.EmployeeID != actor.ID {
		return nil, fmt.Errorf("%w: grievance belongs to another employee", service.ErrForbidden)
	}

	return g, nil
}

func (s *srv) CreateGrievance(ctx context.Context, actor entities.User, p service.CreateGrievanceParams) (*entities.Grievance, error) {
	subject, err := requireText("subject", p.Subject)
	if err != nil {
		return nil, err
	}

	description, err := requireText("description", p.Description)
	if err != nil {
		return nil, err
	}

	g := entities.Grievance{
		ID:                s.newID("grievance"),
		EmployeeID:        actor.ID,
		EmployeeName:      actor.Name,
		EmployeeAvatarURL: actor.AvatarURL,
		Subject:           subject,
		Description:       description,
		Status:            entities.GrievancePending,
		CreatedAt:         s.now(),
	}

	if err := s.s.CreateGrievance(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create grievance: %w", err)
	}

	return &g, nil
}

func validGrievanceStatus(st entities.GrievanceStatus) error {
	switch st {
	case entities.GrievancePending, entities.GrievanceInProgress, entities.GrievanceResolved:
		return nil
	}

	return fmt.Errorf("%w: invalid status", service.ErrInvalidRequest)
}

func (s *srv) ChangeGrievanceStatus(ctx context.Context, actor entities.User, id string, p service.ChangeGrievanceStatusParams) (*entities.Grievance, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can manage grievances", service.ErrForbidden)
	}

	if err := validGrievanceStatus(p.Status); err != nil {
		return nil, err
	}

	comment := strings.TrimSpace(p.Comment)

	// moving to In Progress or Resolved requires an explanation for the
	// employee
	if comment == "" && p.Status != entities.GrievancePending {
		return nil, fmt.Errorf("%w: a comment is required for status %q", service.ErrInvalidRequest, p.Status)
	}

	var gc *entities.GrievanceComment
	if comment != "" {
		gc = &entities.GrievanceComment{
			ID:        s.newID("comment"),
			Text:      comment,
			Author:    s.author(actor),
			CreatedAt: s.now(),
		}
	}

	now := s.now()

	g, err := s.s.MutateGrievance(ctx, id, func(g entities.Grievance) entities.Grievance {
		return g.WithStatus(p.Status, gc, now)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to change status: %w", err)
	}

	return g, nil
}

func (s *srv) AddGrievanceComment(ctx context.Context, actor entities.User, id, text string) (*entities.Grievance, error) {
	text, err := requireText("text", text)
	if err != nil {
		return nil, err
	}

	current, err := s.GetGrievance(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	c := entities.GrievanceComment{
		ID:        s.newID("comment"),
		Text:      text,
		Author:    s.author(actor),
		CreatedAt: s.now(),
		Status:    current.Status,
	}

	g, err := s.s.MutateGrievance(ctx, id, func(g entities.Grievance) entities.Grievance {
		return g.WithComment(c)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return g, nil
}

func (s *srv) ListSuggestions(ctx context.Context, query string) ([]entities.Suggestion, error) {
	suggestions, err := s.s.ListSuggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	return views.SortSuggestions(views.FilterSuggestions(suggestions, query)), nil
}

func (s *srv) CreateSuggestion(ctx context.Context, actor entities.User, p service.CreateSuggestionParams) (*entities.Suggestion, error) {
	title, err := requireText("title", p.Title)
	if err != nil {
		return nil, err
	}

	description, err := requireText("description", p.Description)
	if err != nil {
		return nil, err
	}

	v := entities.Suggestion{
		ID:                s.newID("suggestion"),
		EmployeeID:        actor.ID,
		EmployeeName:      actor.Name,
		EmployeeAvatarURL: actor.AvatarURL,
		Title:             title,
		Description:       description,
		CreatedAt:         s.now(),
		UpvotedBy:         []string{},
		Comments:          []entities.Comment{},
	}

	if err := s.s.CreateSuggestion(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	return &v, nil
}

func (s *srv) ToggleSuggestionUpvote(ctx context.Context, actor entities.User, id string) (*entities.Suggestion, error) {
	v, err := s.s.MutateSuggestion(ctx, id, func(v entities.Suggestion) entities.Suggestion {
		return v.WithToggledUpvote(actor.ID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to toggle upvote: %w", err)
	}

	return v, nil
}

func (s *srv) AddSuggestionComment(ctx context.Context, actor entities.User, id, text string) (*entities.Suggestion, error) {
	text, err := requireText("text", text)
	if err != nil {
		return nil, err
	}

	c := entities.Comment{
		ID:        s.newID("comment"),
		User:      s.author(actor),
		Text:      text,
		Timestamp: s.now(),
	}

	v, err := s.s.MutateSuggestion(ctx, id, func(v entities.Suggestion) entities.Suggestion {
		return v.WithComment(c)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return v, nil
}

func (s *srv) AddSuggestionReply(ctx context.Context, actor entities.User, id, commentID, text string) (*entities.Suggestion, error) {
	text, err := requireText("text", text)
	if err != nil {
		return nil, err
	}

	r := entities.Reply{
		ID:        s.newID("reply"),
		User:      s.author(actor),
		Text:      text,
		Timestamp: s.now(),
	}

	v, err := s.s.MutateSuggestion(ctx, id, func(v entities.Suggestion) entities.Suggestion {
		return v.WithReply(commentID, r)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to add reply: %w", err)
	}

	return v, nil
}

func (s *srv) ListAppreciations(ctx context.Context, query string) ([]entities.Appreciation, error) {
	appreciations, err := s.s.ListAppreciations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appreciations: %w", err)
	}

	return views.SortAppreciations(views.FilterAppreciations(appreciations, query)), nil
}

func (s *srv) CreateAppreciation(ctx context.Context, actor entities.User, p service.CreateAppreciationParams) (*entities.Appreciation, error) {
	message, err := requireText("message", p.Message)
	if err != nil {
		return nil, err
	}

	to, err := s.s.GetUser(ctx, p.ToUserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown recipient", service.ErrInvalidRequest)
		}

		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	a := entities.Appreciation{
		ID:        s.newID("appreciation"),
		From:      entities.Party{ID: actor.ID, Name: actor.Name, AvatarURL: actor.AvatarURL},
		To:        entities.Party{ID: to.ID, Name: to.Name, AvatarURL: to.AvatarURL},
		Message:   message,
		CreatedAt: s.now(),
		LikedBy:   []string{},
	}

	if err := s.s.CreateAppreciation(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create appreciation: %w", err)
	}

	return &a, nil
}

func (s *srv) ToggleAppreciationLike(ctx context.Context, actor entities.User, id string) (*entities.Appreciation, error) {
	a, err := s.s.MutateAppreciation(ctx, id, func(a entities.Appreciation) entities.Appreciation {
		return a.WithToggledLike(actor.ID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	return a, nil
}

func (s *srv) Stats(ctx context.Context) (*service.Stats, error) {
	out := service.Stats{}

	posts, err := s.s.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	out.Posts = len(posts)
	for _, p := range posts {
		out.Comments += len(p.Comments)
		out.Likes += p.Likes
	}

	polls, err := s.s.ListPolls(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	out.Polls = len(polls)

	grievances, err := s.s.ListGrievances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grievances: %w", err)
	}
	out.Grievances = len(grievances)
	for _, g := range grievances {
		if g.Status == entities.GrievancePending {
			out.PendingGrievances++
		}
	}

	suggestions, err := s.s.ListSuggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	out.Suggestions = len(suggestions)
	for _, v := range suggestions {
		out.Comments += len(v.Comments)
		out.Likes += v.Upvotes
	}

	appreciations, err := s.s.ListAppreciations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appreciations: %w", err)
	}
	out.Appreciations = len(appreciations)
	for _, a := range appreciations {
		out.Likes += a.Likes
	}

	return &out, nil
}
