package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/crypto/bcrypt"

	"starwarsapi/internal/models"
)

const userColumns = `id, email, is_active`

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.IsActive)
	return u, err
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CreateUser registers a user. Email and password are required; the account is
// active unless the caller says otherwise.
func (s *Store) CreateUser(ctx context.Context, fields models.UserFields) (models.User, error) {
	email, err := requiredString("email", fields.Email)
	if err != nil {
		return models.User{}, err
	}
	if fields.Password == nil || *fields.Password == "" {
		return models.User{}, missingField("password")
	}

	hash, err := hashPassword(*fields.Password)
	if err != nil {
		return models.User{}, err
	}

	isActive := true
	if fields.IsActive != nil {
		isActive = *fields.IsActive
	}

	u, err := scanUser(s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, is_active)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		email, hash, isActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetUser retrieves a single user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateUser overwrites the supplied attributes. A new password is hashed again.
func (s *Store) UpdateUser(ctx context.Context, id int64, fields models.UserFields) (models.User, error) {
	set := map[string]any{}
	if fields.Email != nil {
		email, err := requiredString("email", fields.Email)
		if err != nil {
			return models.User{}, err
		}
		set["email"] = email
	}
	if fields.Password != nil {
		if *fields.Password == "" {
			return models.User{}, missingField("password")
		}
		hash, err := hashPassword(*fields.Password)
		if err != nil {
			return models.User{}, err
		}
		set["password_hash"] = hash
	}
	if fields.IsActive != nil {
		set["is_active"] = *fields.IsActive
	}

	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}

	query, args, err := s.psql.Update("users").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("build user update: %w", err)
	}

	u, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case isUniqueViolation(err):
		return models.User{}, ErrUserExists
	case err != nil:
		return models.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes a user together with the user's favorites.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, `DELETE FROM users WHERE id = $1`, id, ErrUserNotFound); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// UserExists reports whether a user with the given id is stored.
func (s *Store) UserExists(ctx context.Context, id int64) (bool, error) {
	found, err := s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return found, nil
}

