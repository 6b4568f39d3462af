//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/storage"
	"github.com/orgablast/sembconnect/internal/storage/seed"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(t *testing.M) {
	shutdown := setup()

	s = New(db)

	code := t.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return func() {
		if c != nil {
			_ = c.Terminate(ctx)
		}
	}
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	t.Helper()

	for _, table := range []string{
		tableUsers, tableEmployees, tablePosts, tablePolls,
		tableGrievances, tableSuggestions, tableAppreciations,
	} {
		_, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table))
		require.NoError(t, err)
	}
}

func TestPg_Ping(t *testing.T) {
	require.NoError(t, s.Ping(ctx))
}

func TestPg_Posts(t *testing.T) {
	defer cleanup(t)

	created := entities.Post{
		ID:        "bulletin-1",
		Author:    entities.Author{Name: "Alex Hartman"},
		Category:  entities.CategoryOrganization,
		Title:     "title",
		Content:   "content",
		LikedBy:   []string{},
		ViewedBy:  []string{},
		Comments:  []entities.Comment{},
		CreatedAt: time.Date(2025, time.November, 5, 7, 0, 0, 0, time.UTC),
	}

	require.NoError(t, s.CreatePost(ctx, created))
	require.NoError(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-2", CreatedAt: created.CreatedAt}))

	assert.ErrorIs(t, s.CreatePost(ctx, entities.Post{ID: "bulletin-1"}), storage.ErrAlreadyExists)

	got, err := s.GetPost(ctx, "bulletin-1")
	require.NoError(t, err)
	assert.Equal(t, created, *got)

	_, err = s.GetPost(ctx, "bulletin-404")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "bulletin-2", posts[0].ID)
	assert.Equal(t, "bulletin-1", posts[1].ID)

	mutated, err := s.MutatePost(ctx, "bulletin-1", func(p entities.Post) entities.Post {
		return p.WithToggledLike("user-1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, mutated.Likes)

	got, err = s.GetPost(ctx, "bulletin-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, got.LikedBy)

	_, err = s.MutatePost(ctx, "bulletin-404", func(p entities.Post) entities.Post { return p })
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.DeletePost(ctx, "bulletin-1"))
	assert.ErrorIs(t, s.DeletePost(ctx, "bulletin-1"), storage.ErrNotFound)
}

func TestPg_Users(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.SetUser(ctx, entities.User{ID: "user-1", Name: "Alex", Role: entities.RoleAdmin}))
	require.NoError(t, s.SetUser(ctx, entities.User{ID: "user-2", Name: "Yogesh", Role: entities.RoleEmployee}))
	require.NoError(t, s.SetUser(ctx, entities.User{ID: "user-1", Name: "Alexander", Role: entities.RoleAdmin}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alexander", users[0].Name)

	u, err := s.GetUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Yogesh", u.Name)

	_, err = s.GetUser(ctx, "user-404")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPg_Polls(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.CreatePoll(ctx, entities.Poll{
		ID:       "poll-1",
		Question: "q",
		Options:  []entities.PollOption{{ID: "o1"}, {ID: "o2"}},
		VotedBy:  []string{},
	}))

	mutated, err := s.MutatePoll(ctx, "poll-1", func(p entities.Poll) entities.Poll {
		return p.WithVote("o2", "user-1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, mutated.Options[1].Votes)

	polls, err := s.ListPolls(ctx)
	require.NoError(t, err)
	require.Len(t, polls, 1)
	assert.Equal(t, []string{"user-1"}, polls[0].VotedBy)
}

func TestPg_Grievances(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.CreateGrievance(ctx, entities.Grievance{
		ID:     "grievance-1",
		Status: entities.GrievancePending,
	}))

	now := time.Date(2025, time.November, 5, 8, 0, 0, 0, time.UTC)

	mutated, err := s.MutateGrievance(ctx, "grievance-1", func(g entities.Grievance) entities.Grievance {
		return g.WithStatus(entities.GrievanceResolved, &entities.GrievanceComment{ID: "gc-1", Text: "done"}, now)
	})
	require.NoError(t, err)
	require.NotNil(t, mutated.ResolvedAt)
	assert.Equal(t, now, mutated.ResolvedAt.UTC())

	got, err := s.GetGrievance(ctx, "grievance-1")
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, entities.GrievanceResolved, got.Comments[0].Status)
}

func TestPg_Seed(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, seed.Apply(ctx, s))

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "bulletin-1", posts[0].ID)

	employees, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 6)
}
