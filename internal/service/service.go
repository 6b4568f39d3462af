// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/orgablast/sembconnect/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden returned when the acting user lacks the capability for an
// operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidRequest returned on validation failures; no state is changed.
var ErrInvalidRequest = errors.New("invalid request")

// ListPostsParams ...
type ListPostsParams struct {
	Query    string
	Category *entities.Category
}

// CreatePostParams ...
type CreatePostParams struct {
	Category     entities.Category
	Title        string
	Content      string
	ImageURL     string
	Link         *entities.Link
	ScheduledFor *time.Time
	EndDate      *time.Time
}

// ListPollsParams ...
type ListPollsParams struct {
	Query    string
	Category *entities.Category
}

// CreatePollParams ...
type CreatePollParams struct {
	Question string
	Options  []string
	Category entities.Category
	EndDate  *time.Time
}

// CreateGrievanceParams ...
type CreateGrievanceParams struct {
	Subject     string
	Description string
}

// ChangeGrievanceStatusParams ...
type ChangeGrievanceStatusParams struct {
	Status  entities.GrievanceStatus
	Comment string
}

// CreateSuggestionParams ...
type CreateSuggestionParams struct {
	Title       string
	Description string
}

// CreateAppreciationParams ...
type CreateAppreciationParams struct {
	ToUserID string
	Message  string
}

// Stats is a dashboard aggregate over all collections.
type Stats struct {
	Posts             int `json:"posts"`
	Polls             int `json:"polls"`
	Grievances        int `json:"grievances"`
	PendingGrievances int `json:"pendingGrievances"`
	Suggestions       int `json:"suggestions"`
	Appreciations     int `json:"appreciations"`
	Comments          int `json:"comments"`
	Likes             int `json:"likes"`
}

// Service owns validation, capability gating and author stamping.
// Mutating operations take the acting user explicitly; there is no ambient
// current-user state.
type Service interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	ListEmployees(ctx context.Context) ([]entities.Employee, error)

	ListPosts(ctx context.Context, p ListPostsParams) ([]entities.Post, error)
	FeaturedPosts(ctx context.Context) ([]entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	CreatePost(ctx context.Context, actor entities.User, p CreatePostParams) (*entities.Post, error)
	UpdatePost(ctx context.Context, actor entities.User, p entities.Post) (*entities.Post, error)
	DeletePost(ctx context.Context, actor entities.User, id string) error
	TogglePostLike(ctx context.Context, actor entities.User, id string) (*entities.Post, error)
	MarkPostViewed(ctx context.Context, actor entities.User, id string) (*entities.Post, error)
	AddPostComment(ctx context.Context, actor entities.User, id, text string) (*entities.Post, error)
	AddPostReply(ctx context.Context, actor entities.User, id, commentID, text string) (*entities.Post, error)

	ListPolls(ctx context.Context, p ListPollsParams) ([]entities.Poll, error)
	CreatePoll(ctx context.Context, actor entities.User, p CreatePollParams) (*entities.Poll, error)
	Vote(ctx context.Context, actor entities.User, pollID, optionID string) (*entities.Poll, error)

	ListGrievances(ctx context.Context, actor entities.User, query string) ([]entities.Grievance, error)
	GetGrievance(ctx context.Context, actor entities.User, id string) (*entities.Grievance, error)
	CreateGrievance(ctx context.Context, actor entities.User, p CreateGrievanceParams) (*entities.Grievance, error)
	ChangeGrievanceStatus(ctx context.Context, actor entities.User, id string, p ChangeGrievanceStatusParams) (*entities.Grievance, error)
	AddGrievanceComment(ctx context.Context, actor entities.User, id, text string) (*entities.Grievance, error)

	ListSuggestions(ctx context.Context, query string) ([]entities.Suggestion, error)
	CreateSuggestion(ctx context.Context, actor entities.User, p CreateSuggestionParams) (*entities.Suggestion, error)
	ToggleSuggestionUpvote(ctx context.Context, actor entities.User, id string) (*entities.Suggestion, error)
	AddSuggestionComment(ctx context.Context, actor entities.User, id, text string) (*entities.Suggestion, error)
	AddSuggestionReply(ctx context.Context, actor entities.User, id, commentID, text string) (*entities.Suggestion, error)

	ListAppreciations(ctx context.Context, query string) ([]entities.Appreciation, error)
	CreateAppreciation(ctx context.Context, actor entities.User, p CreateAppreciationParams) (*entities.Appreciation, error)
	ToggleAppreciationLike(ctx context.Context, actor entities.User, id string) (*entities.Appreciation, error)

	Stats(ctx context.Context) (*Stats, error)
}
