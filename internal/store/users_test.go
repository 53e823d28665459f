package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"starwarsapi/internal/models"
)

var userRowColumns = []string{"id", "email", "is_active"}

func TestCreateUserHashesPassword(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, password_hash, is_active) VALUES ($1, $2, $3) RETURNING id, email, is_active`)).
		WithArgs("luke@rebellion.org", hashNot("secret"), true).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(int64(1), "luke@rebellion.org", true))

	got, err := s.CreateUser(context.Background(), models.UserFields{
		Email:    strPtr("luke@rebellion.org"),
		Password: strPtr("secret"),
	})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if got.ID != 1 || got.Email != "luke@rebellion.org" || !got.IsActive {
		t.Fatalf("unexpected user: %#v", got)
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		fields models.UserFields
	}{
		{name: "missing email", fields: models.UserFields{Password: strPtr("secret")}},
		{name: "blank email", fields: models.UserFields{Email: strPtr(" "), Password: strPtr("secret")}},
		{name: "missing password", fields: models.UserFields{Email: strPtr("a@b.c")}},
		{name: "empty password", fields: models.UserFields{Email: strPtr("a@b.c"), Password: strPtr("")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newMockStore(t)
			_, err := s.CreateUser(context.Background(), tc.fields)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := s.CreateUser(context.Background(), models.UserFields{
		Email:    strPtr("leia@rebellion.org"),
		Password: strPtr("secret"),
		IsActive: boolPtr(false),
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET is_active = $1, password_hash = $2 WHERE id = $3 RETURNING id, email, is_active`)).
		WithArgs(false, hashNot("new-secret"), int64(2)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(int64(2), "han@falcon.net", false))

	got, err := s.UpdateUser(context.Background(), 2, models.UserFields{
		Password: strPtr("new-secret"),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdateUser error: %v", err)
	}
	if got.IsActive || got.Email != "han@falcon.net" {
		t.Fatalf("unexpected user: %#v", got)
	}
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET email = $1 WHERE id = $2 RETURNING id, email, is_active`)).
		WithArgs("luke@rebellion.org", int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := s.UpdateUser(context.Background(), 2, models.UserFields{Email: strPtr("luke@rebellion.org")})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET is_active = $1 WHERE id = $2`)).
		WithArgs(true, int64(77)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := s.UpdateUser(context.Background(), 77, models.UserFields{IsActive: boolPtr(true)})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, is_active FROM users WHERE id = $1`)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	if _, err := s.GetUser(context.Background(), 8); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, is_active FROM users ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(1), "luke@rebellion.org", true).
			AddRow(int64(2), "han@falcon.net", false))

	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(users) != 2 || users[1].IsActive {
		t.Fatalf("unexpected users: %#v", users)
	}
}

// hashNot matches any bcrypt hash argument that is not the plaintext itself.
type hashNot string

func (h hashNot) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && s != string(h) && len(s) == 60
}
