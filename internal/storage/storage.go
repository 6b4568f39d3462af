// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/orgablast/sembconnect/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists is returned when a created entity's id collides with an
// existing one.
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with the backing store.
//
// Creates prepend: a freshly created entity is first in list order.
// Mutate operations apply f to the current entity value atomically with
// respect to other mutations of the same id; f must be pure.
type Storage interface {
	Ping(ctx context.Context) error

	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	SetUser(ctx context.Context, u entities.User) error

	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	SetEmployee(ctx context.Context, e entities.Employee) error

	ListPosts(ctx context.Context) ([]entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	CreatePost(ctx context.Context, p entities.Post) error
	MutatePost(ctx context.Context, id string, f func(entities.Post) entities.Post) (*entities.Post, error)
	DeletePost(ctx context.Context, id string) error

	ListPolls(ctx context.Context) ([]entities.Poll, error)
	CreatePoll(ctx context.Context, p entities.Poll) error
	MutatePoll(ctx context.Context, id string, f func(entities.Poll) entities.Poll) (*entities.Poll, error)

	ListGrievances(ctx context.Context) ([]entities.Grievance, error)
	GetGrievance(ctx context.Context, id string) (*entities.Grievance, error)
	CreateGrievance(ctx context.Context, g entities.Grievance) error
	MutateGrievance(ctx context.Context, id string, f func(entities.Grievance) entities.Grievance) (*entities.Grievance, error)

	ListSuggestions(ctx context.Context) ([]entities.Suggestion, error)
	CreateSuggestion(ctx context.Context, s entities.Suggestion) error
	MutateSuggestion(ctx context.Context, id string, f func(entities.Suggestion) entities.Suggestion) (*entities.Suggestion, error)

	ListAppreciations(ctx context.Context) ([]entities.Appreciation, error)
	CreateAppreciation(ctx context.Context, a entities.Appreciation) error
	MutateAppreciation(ctx context.Context, id string, f func(entities.Appreciation) entities.Appreciation) (*entities.Appreciation, error)
}
