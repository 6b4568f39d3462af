// Package inmemory is implementation of storage interface backed by ordered
// in-memory collections. All writes are copy-on-write: readers keep working
// with the snapshot they obtained and never observe a partial mutation.
package inmemory

import (
	"context"
	"sync"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/storage"
)

// InMemory holds every collection as an ordered list, newest first.
type InMemory struct {
	mu sync.RWMutex

	users         []entities.User
	employees     []entities.Employee
	posts         []entities.Post
	polls         []entities.Poll
	grievances    []entities.Grievance
	suggestions   []entities.Suggestion
	appreciations []entities.Appreciation
}

// New creates an empty in-memory storage.
func New() *InMemory {
	return &InMemory{}
}

// Ping ...
func (s *InMemory) Ping(_ context.Context) error {
	return nil
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	return out
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i := range items {
		if idOf(items[i]) == id {
			return i
		}
	}

	return -1
}

// prepend inserts v at the head of items, copy-on-write.
func prepend[T any](items []T, v T, idOf func(T) string) ([]T, error) {
	if indexOf(items, idOf(v), idOf) >= 0 {
		return nil, storage.ErrAlreadyExists
	}

	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	out = append(out, items...)

	return out, nil
}

// replace swaps the element with the given id for f's result in a fresh slice.
func replace[T any](items []T, id string, idOf func(T) string, f func(T) T) ([]T, *T, error) {
	i := indexOf(items, id, idOf)
	if i < 0 {
		return nil, nil, storage.ErrNotFound
	}

	out := cloneSlice(items)
	out[i] = f(out[i])

	return out, &out[i], nil
}

func remove[T any](items []T, id string, idOf func(T) string) ([]T, error) {
	i := indexOf(items, id, idOf)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)

	return out, nil
}

func userID(u entities.User) string                 { return u.ID }
func employeeID(e entities.Employee) string         { return e.ID }
func postID(p entities.Post) string                 { return p.ID }
func pollID(p entities.Poll) string                 { return p.ID }
func grievanceID(g entities.Grievance) string       { return g.ID }
func suggestionID(s entities.Suggestion) string     { return s.ID }
func appreciationID(a entities.Appreciation) string { return a.ID }

// ListUsers ...
func (s *InMemory) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.users), nil
}

// GetUser ...
func (s *InMemory) GetUser(_ context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.users, id, userID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	u := s.users[i]

	return &u, nil
}

// SetUser inserts or replaces a roster member.
func (s *InMemory) SetUser(_ context.Context, u entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.users, u.ID, userID); i >= 0 {
		users := cloneSlice(s.users)
		users[i] = u
		s.users = users

		return nil
	}

	users := cloneSlice(s.users)
	s.users = append(users, u)

	return nil
}

// ListEmployees ...
func (s *InMemory) ListEmployees(_ context.Context) ([]entities.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.employees), nil
}

// SetEmployee inserts or replaces a directory record.
func (s *InMemory) SetEmployee(_ context.Context, e entities.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.employees, e.ID, employeeID); i >= 0 {
		employees := cloneSlice(s.employees)
		employees[i] = e
		s.employees = employees

		return nil
	}

	employees := cloneSlice(s.employees)
	s.employees = append(employees, e)

	return nil
}

// ListPosts ...
func (s *InMemory) ListPosts(_ context.Context) ([]entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.posts), nil
}

// GetPost ...
func (s *InMemory) GetPost(_ context.Context, id string) (*entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.posts, id, postID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	p := s.posts[i]

	return &p, nil
}

// CreatePost ...
func (s *InMemory) CreatePost(_ context.Context, p entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := prepend(s.posts, p, postID)
	if err != nil {
		return err
	}
	s.posts = posts

	return nil
}

// MutatePost ...
func (s *InMemory) MutatePost(_ context.Context, id string, f func(entities.Post) entities.Post) (*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, p, err := replace(s.posts, id, postID, f)
	if err != nil {
		return nil, err
	}
	s.posts = posts

	out := *p

	return &out, nil
}

// DeletePost ...
func (s *InMemory) DeletePost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := remove(s.posts, id, postID)
	if err != nil {
		return err
	}
	s.posts = posts

	return nil
}

// ListPolls ...
func (s *InMemory) ListPolls(_ context.Context) ([]entities.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.polls), nil
}

// CreatePoll ...
func (s *InMemory) CreatePoll(_ context.Context, p entities.Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	polls, err := prepend(s.polls, p, pollID)
	if err != nil {
		return err
	}
	s.polls = polls

	return nil
}

// MutatePoll ...
func (s *InMemory) MutatePoll(_ context.Context, id string, f func(entities.Poll) entities.Poll) (*entities.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	polls, p, err := replace(s.polls, id, pollID, f)
	if err != nil {
		return nil, err
	}
	s.polls = polls

	out := *p

	return &out, nil
}

// ListGrievances ...
func (s *InMemory) ListGrievances(_ context.Context) ([]entities.Grievance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.grievances), nil
}

// GetGrievance ...
func (s *InMemory) GetGrievance(_ context.Context, id string) (*entities.Grievance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.grievances, id, grievanceID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	g := s.grievances[i]

	return &g, nil
}

// CreateGrievance ...
func (s *InMemory) CreateGrievance(_ context.Context, g entities.Grievance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grievances, err := prepend(s.grievances, g, grievanceID)
	if err != nil {
		return err
	}
	s.grievances = grievances

	return nil
}

// MutateGrievance ...
func (s *InMemory) MutateGrievance(_ context.Context, id string, f func(entities.Grievance) entities.Grievance) (*entities.Grievance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grievances, g, err := replace(s.grievances, id, grievanceID, f)
	if err != nil {
		return nil, err
	}
	s.grievances = grievances

	out := *g

	return &out, nil
}

// ListSuggestions ...
func (s *InMemory) ListSuggestions(_ context.Context) ([]entities.Suggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.suggestions), nil
}

// CreateSuggestion ...
func (s *InMemory) CreateSuggestion(_ context.Context, v entities.Suggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	suggestions, err := prepend(s.suggestions, v, suggestionID)
	if err != nil {
		return err
	}
	s.suggestions = suggestions

	return nil
}

// MutateSuggestion ...
func (s *InMemory) MutateSuggestion(_ context.Context, id string, f func(entities.Suggestion) entities.Suggestion) (*entities.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	suggestions, v, err := replace(s.suggestions, id, suggestionID, f)
	if err != nil {
		return nil, err
	}
	s.suggestions = suggestions

	out := *v

	return &out, nil
}

// ListAppreciations ...
func (s *InMemory) ListAppreciations(_ context.Context) ([]entities.Appreciation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.appreciations), nil
}

// CreateAppreciation ...
func (s *InMemory) CreateAppreciation(_ context.Context, a entities.Appreciation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appreciations, err := prepend(s.appreciations, a, appreciationID)
	if err != nil {
		return err
	}
	s.appreciations = appreciations

	return nil
}

// MutateAppreciation ...
func (s *InMemory) MutateAppreciation(_ context.Context, id string, f func(entities.Appreciation) entities.Appreciation) (*entities.Appreciation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appreciations, a, err := replace(s.appreciations, id, appreciationID, f)
	if err != nil {
		return nil, err
	}
	s.appreciations = appreciations

	out := *a

	return &out, nil
}
