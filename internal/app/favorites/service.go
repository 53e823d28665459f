package favorites

import (
	"context"

	"starwarsapi/internal/models"
	"starwarsapi/internal/store"
)

// Store defines persistence operations required for favorites workflows.
type Store interface {
	UserExists(ctx context.Context, id int64) (bool, error)
	PlanetExists(ctx context.Context, id int64) (bool, error)
	PersonExists(ctx context.Context, id int64) (bool, error)
	FavoriteExists(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (bool, error)
	CreateFavorite(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (models.Favorite, error)
	DeleteFavorite(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) error
	ListFavoritesByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
}

// Service describes high level favorites operations used by HTTP handlers.
type Service interface {
	Add(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (models.Favorite, error)
	Remove(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) error
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
}

type service struct {
	store Store
}

// New constructs a favorites Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

// Add favorites a planet or person for the user. The user is checked first,
// then the target, then duplicates; nothing is written if any check fails.
func (s *service) Add(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (models.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return models.Favorite{}, err
	}
	if !kind.Valid() {
		return models.Favorite{}, store.ErrInvalidTarget
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return models.Favorite{}, err
	}
	if err := s.ensureTarget(ctx, kind, targetID); err != nil {
		return models.Favorite{}, err
	}

	exists, err := s.store.FavoriteExists(ctx, userID, kind, targetID)
	if err != nil {
		return models.Favorite{}, err
	}
	if exists {
		return models.Favorite{}, store.ErrFavoriteExists
	}

	return s.store.CreateFavorite(ctx, userID, kind, targetID)
}

func (s *service) Remove(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !kind.Valid() {
		return store.ErrInvalidTarget
	}
	return s.store.DeleteFavorite(ctx, userID, kind, targetID)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListFavoritesByUser(ctx, userID)
}

func (s *service) ensureUser(ctx context.Context, userID int64) error {
	ok, err := s.store.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrUserNotFound
	}
	return nil
}

func (s *service) ensureTarget(ctx context.Context, kind models.TargetKind, targetID int64) error {
	var (
		ok       bool
		err      error
		notFound error
	)
	switch kind {
	case models.TargetPlanet:
		ok, err = s.store.PlanetExists(ctx, targetID)
		notFound = store.ErrPlanetNotFound
	case models.TargetPeople:
		ok, err = s.store.PersonExists(ctx, targetID)
		notFound = store.ErrPersonNotFound
	default:
		return store.ErrInvalidTarget
	}
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
