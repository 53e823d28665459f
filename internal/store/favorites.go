package store

import (
	"context"
	"errors"
	"fmt"

	"starwarsapi/internal/models"
)

var (
	// ErrFavoriteExists signals the user already favorited the target.
	ErrFavoriteExists = errors.New("favorite already exists")
	// ErrFavoriteNotFound indicates the user has no favorite for the target.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrInvalidTarget signals a favorite kind other than planet or people.
	ErrInvalidTarget = errors.New("favorite target must be planet or people")
)

const favoriteColumns = `id, user_id, planet_id, people_id`

func scanFavorite(row rowScanner) (models.Favorite, error) {
	var f models.Favorite
	err := row.Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID)
	return f, err
}

// targetColumn maps a favorite kind to the foreign key column holding it.
func targetColumn(kind models.TargetKind) (string, error) {
	switch kind {
	case models.TargetPlanet:
		return "planet_id", nil
	case models.TargetPeople:
		return "people_id", nil
	default:
		return "", ErrInvalidTarget
	}
}

// FavoriteExists reports whether the user already favorited the target.
func (s *Store) FavoriteExists(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (bool, error) {
	column, err := targetColumn(kind)
	if err != nil {
		return false, err
	}

	found, err := s.exists(ctx, fmt.Sprintf(`
		SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND %s = $2)
	`, column), userID, targetID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return found, nil
}

// CreateFavorite links the user to a planet or a person.
func (s *Store) CreateFavorite(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (models.Favorite, error) {
	var planetID, peopleID *int64
	switch kind {
	case models.TargetPlanet:
		planetID = &targetID
	case models.TargetPeople:
		peopleID = &targetID
	default:
		return models.Favorite{}, ErrInvalidTarget
	}

	f, err := scanFavorite(s.db.QueryRowContext(ctx, `
		INSERT INTO favorites (user_id, planet_id, people_id)
		VALUES ($1, $2, $3)
		RETURNING `+favoriteColumns,
		userID, planetID, peopleID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return models.Favorite{}, ErrFavoriteExists
		}
		return models.Favorite{}, fmt.Errorf("insert favorite: %w", err)
	}
	return f, nil
}

// DeleteFavorite removes the user's favorite for the target.
func (s *Store) DeleteFavorite(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) error {
	column, err := targetColumn(kind)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		DELETE FROM favorites
		WHERE user_id = $1 AND %s = $2
	`, column), userID, targetID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ListFavoritesByUser returns all favorites for a user.
func (s *Store) ListFavoritesByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+favoriteColumns+`
		FROM favorites
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return favorites, nil
}
