package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/storage"
	"github.com/orgablast/sembconnect/internal/storage/seed"
)

var ctx = context.Background()

func TestInMemory_CreatePost_newestFirst(t *testing.T) {
	s := New()

	require.NoError(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-1", Title: "A"}))
	require.NoError(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-2", Title: "B"}))

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "bulletin-2", posts[0].ID)
	assert.Equal(t, "bulletin-1", posts[1].ID)
}

func TestInMemory_CreatePost_duplicateID(t *testing.T) {
	s := New()

	require.NoError(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-1"}))
	assert.ErrorIs(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-1"}), storage.ErrAlreadyExists)
}

func TestInMemory_MutatePost(t *testing.T) {
	s := New()

	require.NoError(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-1"}))

	before, err := s.ListPosts(ctx)
	require.NoError(t, err)

	p, err := s.MutatePost(ctx, "bulletin-1", func(p entities.Post) entities.Post {
		return p.WithToggledLike("user-1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Likes)
	assert.Equal(t, []string{"user-1"}, p.LikedBy)

	// the snapshot taken before the mutation is unaffected
	assert.Zero(t, before[0].Likes)
	assert.Empty(t, before[0].LikedBy)

	after, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, after[0].Likes)
}

func TestInMemory_MutatePost_notFound(t *testing.T) {
	s := New()

	_, err := s.MutatePost(ctx, "bulletin-404", func(p entities.Post) entities.Post { return p })
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInMemory_DeletePost(t *testing.T) {
	s := New()

	require.NoError(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-1"}))
	require.NoError(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-2"}))

	require.NoError(t, s.DeletePost(ctx, "bulletin-1"))

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "bulletin-2", posts[0].ID)

	assert.ErrorIs(t, s.DeletePost(ctx, "bulletin-1"), storage.ErrNotFound)
}

func TestInMemory_GetPost(t *testing.T) {
	s := New()

	require.NoError(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-1", Title: "A"}))

	p, err := s.GetPost(ctx, "bulletin-1")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Title)

	_, err = s.GetPost(ctx, "bulletin-404")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInMemory_SetUser_upsert(t *testing.T) {
	s := New()

	require.NoError(t, s.SetUser(ctx, entities.User{ID: "user-1", Name: "Alex"}))
	require.NoError(t, s.SetUser(ctx, entities.User{ID: "user-1", Name: "Alexander"}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alexander", users[0].Name)

	u, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alexander", u.Name)
}

func TestInMemory_MutatePoll_voteVisible(t *testing.T) {
	s := New()

	require.NoError(t, s.CreatePoll(ctx, entities.Poll{
		ID:      "poll-1",
		Options: []entities.PollOption{{ID: "o1"}, {ID: "o2"}},
	}))

	_, err := s.MutatePoll(ctx, "poll-1", func(p entities.Poll) entities.Poll {
		return p.WithVote("o1", "user-1")
	})
	require.NoError(t, err)

	polls, err := s.ListPolls(ctx)
	require.NoError(t, err)
	require.Len(t, polls, 1)
	assert.Equal(t, 1, polls[0].Options[0].Votes)
	assert.Equal(t, []string{"user-1"}, polls[0].VotedBy)
}

func TestInMemory_MutateGrievance(t *testing.T) {
	s := New()
	now := time.Date(2025, time.November, 5, 8, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateGrievance(ctx, entities.Grievance{
		ID:     "grievance-1",
		Status: entities.GrievancePending,
	}))

	g, err := s.MutateGrievance(ctx, "grievance-1", func(g entities.Grievance) entities.Grievance {
		return g.WithStatus(entities.GrievanceResolved, &entities.GrievanceComment{ID: "gc-1", Text: "done"}, now)
	})
	require.NoError(t, err)
	assert.Equal(t, entities.GrievanceResolved, g.Status)
	require.NotNil(t, g.ResolvedAt)
	require.Len(t, g.Comments, 1)
}

func TestSeed_Apply(t *testing.T) {
	s := New()

	require.NoError(t, seed.Apply(ctx, s))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	employees, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 6)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	// seed order survives prepending creates
	assert.Equal(t, "bulletin-1", posts[0].ID)
	assert.Equal(t, "bulletin-3", posts[2].ID)

	grievances, err := s.ListGrievances(ctx)
	require.NoError(t, err)
	assert.Len(t, grievances, 3)

	polls, err := s.ListPolls(ctx)
	require.NoError(t, err)
	assert.Len(t, polls, 1)
}
