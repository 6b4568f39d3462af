// Package postgres is implementation of storage interface.
//
// Every entity is stored as a row (id, insertion position, jsonb document).
// A mutation is a transaction keyed by entity id: the row is locked, the pure
// entity operation is applied to the decoded document and the result written
// back, so concurrent writers to the same entity serialize.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

const uniqueViolation = "23505"

const (
	tableUsers         = "users"
	tableEmployees     = "employees"
	tablePosts         = "posts"
	tablePolls         = "polls"
	tableGrievances    = "grievances"
	tableSuggestions   = "suggestions"
	tableAppreciations = "appreciations"
)

type pg struct {
	db *sqlx.DB
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		db: sqlx.NewDb(db, "postgres"),
	}
}

// Ping ...
func (s pg) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func listDocs[T any](ctx context.Context, q sqlx.QueryerContext, table, order string) ([]T, error) {
	var docs [][]byte

	// table and order are package constants, not user input
	query := fmt.Sprintf(`SELECT doc FROM %s ORDER BY position %s`, table, order)
	if err := sqlx.SelectContext(ctx, q, &docs, query); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]T, len(docs))
	for i, d := range docs {
		if err := json.Unmarshal(d, &out[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal doc: %w", err)
		}
	}

	return out, nil
}

func getDoc[T any](ctx context.Context, q sqlx.QueryerContext, table, id string) (*T, error) {
	var doc []byte

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, table)
	if err := sqlx.GetContext(ctx, q, &doc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	var out T
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal doc: %w", err)
	}

	return &out, nil
}

func createDoc[T any](ctx context.Context, e sqlx.ExecerContext, table, id string, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal doc: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s(id, doc) VALUES($1, $2)`, table)
	if _, err := e.ExecContext(ctx, query, id, doc); err != nil {
		if err, ok := err.(*pq.Error); ok && string(err.Code) == uniqueViolation {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func upsertDoc[T any](ctx context.Context, e sqlx.ExecerContext, table, id string, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal doc: %w", err)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s(id, doc) VALUES($1, $2) ON CONFLICT(id) DO UPDATE SET doc=excluded.doc`, table)
	if _, err := e.ExecContext(ctx, query, id, doc); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func deleteDoc(ctx context.Context, e sqlx.ExecerContext, table, id string) error {
	res, err := e.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// mutateDoc locks the entity row, applies f to the decoded document and
// writes the result back within a single transaction.
func mutateDoc[T any](ctx context.Context, db *sqlx.DB, table, id string, f func(T) T) (*T, error) {
	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to create tx: %w", err)
	}

	out, err := func() (*T, error) {
		var doc []byte

		query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1 FOR UPDATE`, table)
		if err := sqlx.GetContext(ctx, tx, &doc, query, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, storage.ErrNotFound
			}

			return nil, fmt.Errorf("failed to query: %w", err)
		}

		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal doc: %w", err)
		}

		v = f(v)

		updated, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal doc: %w", err)
		}

		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`UPDATE %s SET doc=$2 WHERE id=$1`, table), id, updated); err != nil {
			return nil, fmt.Errorf("failed to exec: %w", err)
		}

		return &v, nil
	}()

	if err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}

		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tx: %w", err)
	}

	return out, nil
}

// ListUsers ...
func (s pg) ListUsers(ctx context.Context) ([]entities.User, error) {
	return listDocs[entities.User](ctx, s.db, tableUsers, "ASC")
}

// GetUser ...
func (s pg) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return getDoc[entities.User](ctx, s.db, tableUsers, id)
}

// SetUser ...
func (s pg) SetUser(ctx context.Context, u entities.User) error {
	return upsertDoc(ctx, s.db, tableUsers, u.ID, u)
}

// ListEmployees ...
func (s pg) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	return listDocs[entities.Employee](ctx, s.db, tableEmployees, "ASC")
}

// SetEmployee ...
func (s pg) SetEmployee(ctx context.Context, e entities.Employee) error {
	return upsertDoc(ctx, s.db, tableEmployees, e.ID, e)
}

// ListPosts ...
func (s pg) ListPosts(ctx context.Context) ([]entities.Post, error) {
	return listDocs[entities.Post](ctx, s.db, tablePosts, "DESC")
}

// GetPost ...
func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	return getDoc[entities.Post](ctx, s.db, tablePosts, id)
}

// CreatePost ...
func (s pg) CreatePost(ctx context.Context, p entities.Post) error {
	return createDoc(ctx, s.db, tablePosts, p.ID, p)
}

// MutatePost ...
func (s pg) MutatePost(ctx context.Context, id string, f func(entities.Post) entities.Post) (*entities.Post, error) {
	return mutateDoc(ctx, s.db, tablePosts, id, f)
}

// DeletePost ...
func (s pg) DeletePost(ctx context.Context, id string) error {
	return deleteDoc(ctx, s.db, tablePosts, id)
}

// ListPolls ...
func (s pg) ListPolls(ctx context.Context) ([]entities.Poll, error) {
	return listDocs[entities.Poll](ctx, s.db, tablePolls, "DESC")
}

// CreatePoll ...
func (s pg) CreatePoll(ctx context.Context, p entities.Poll) error {
	return createDoc(ctx, s.db, tablePolls, p.ID, p)
}

// MutatePoll ...
func (s pg) MutatePoll(ctx context.Context, id string, f func(entities.Poll) entities.Poll) (*entities.Poll, error) {
	return mutateDoc(ctx, s.db, tablePolls, id, f)
}

// ListGrievances ...
func (s pg) ListGrievances(ctx context.Context) ([]entities.Grievance, error) {
	return listDocs[entities.Grievance](ctx, s.db, tableGrievances, "DESC")
}

// GetGrievance ...
func (s pg) GetGrievance(ctx context.Context, id string) (*entities.Grievance, error) {
	return getDoc[entities.Grievance](ctx, s.db, tableGrievances, id)
}

// CreateGrievance ...
func (s pg) CreateGrievance(ctx context.Context, g entities.Grievance) error {
	return createDoc(ctx, s.db, tableGrievances, g.ID, g)
}

// MutateGrievance ...
func (s pg) MutateGrievance(ctx context.Context, id string, f func(entities.Grievance) entities.Grievance) (*entities.Grievance, error) {
	return mutateDoc(ctx, s.db, tableGrievances, id, f)
}

// ListSuggestions ...
func (s pg) ListSuggestions(ctx context.Context) ([]entities.Suggestion, error) {
	return listDocs[entities.Suggestion](ctx, s.db, tableSuggestions, "DESC")
}

// CreateSuggestion ...
func (s pg) CreateSuggestion(ctx context.Context, v entities.Suggestion) error {
	return createDoc(ctx, s.db, tableSuggestions, v.ID, v)
}

// MutateSuggestion ...
func (s pg) MutateSuggestion(ctx context.Context, id string, f func(entities.Suggestion) entities.Suggestion) (*entities.Suggestion, error) {
	return mutateDoc(ctx, s.db, tableSuggestions, id, f)
}

// ListAppreciations ...
func (s pg) ListAppreciations(ctx context.Context) ([]entities.Appreciation, error) {
	return listDocs[entities.Appreciation](ctx, s.db, tableAppreciations, "DESC")
}

// CreateAppreciation ...
func (s pg) CreateAppreciation(ctx context.Context, a entities.Appreciation) error {
	return createDoc(ctx, s.db, tableAppreciations, a.ID, a)
}

// MutateAppreciation ...
func (s pg) MutateAppreciation(ctx context.Context, id string, f func(entities.Appreciation) entities.Appreciation) (*entities.Appreciation, error) {
	return mutateDoc(ctx, s.db, tableAppreciations, id, f)
}
