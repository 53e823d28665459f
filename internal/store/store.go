package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrMissingField signals a required attribute was absent or blank.
	ErrMissingField = errors.New("missing required field")
	// ErrUserExists signals the email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound indicates no user has the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrPersonNotFound indicates no person has the requested id.
	ErrPersonNotFound = errors.New("person not found")
	// ErrPlanetNotFound indicates no planet has the requested id.
	ErrPlanetNotFound = errors.New("planet not found")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db   *sql.DB
	psql sq.StatementBuilderType
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// requiredString returns the value as supplied, or ErrMissingField when it is nil or blank.
func requiredString(name string, value *string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", missingField(name)
	}
	return *value, nil
}

func stringOrDefault(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

// setIfPresent records column = *value for a partial update when value was supplied.
func setIfPresent(set map[string]any, column string, value *string) {
	if value != nil {
		set[column] = *value
	}
}

// exists runs a SELECT EXISTS query and reports the result.
func (s *Store) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// deleteByID removes a single row and maps "nothing deleted" to notFound.
func (s *Store) deleteByID(ctx context.Context, query string, id int64, notFound error) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
