package planets

import (
	"context"

	"starwarsapi/internal/models"
)

// Store defines persistence operations required for planet workflows.
type Store interface {
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)
	CreatePlanet(ctx context.Context, fields models.PlanetFields) (models.Planet, error)
	UpdatePlanet(ctx context.Context, id int64, fields models.PlanetFields) (models.Planet, error)
	DeletePlanet(ctx context.Context, id int64) error
}

// Service exposes CRUD over the planet catalogue.
type Service interface {
	List(ctx context.Context) ([]models.Planet, error)
	Get(ctx context.Context, id int64) (models.Planet, error)
	Create(ctx context.Context, fields models.PlanetFields) (models.Planet, error)
	Update(ctx context.Context, id int64, fields models.PlanetFields) (models.Planet, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a planets Service backed by the given store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.Planet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlanets(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (models.Planet, error) {
	if err := ctx.Err(); err != nil {
		return models.Planet{}, err
	}
	return s.store.GetPlanet(ctx, id)
}

func (s *service) Create(ctx context.Context, fields models.PlanetFields) (models.Planet, error) {
	if err := ctx.Err(); err != nil {
		return models.Planet{}, err
	}
	return s.store.CreatePlanet(ctx, fields)
}

func (s *service) Update(ctx context.Context, id int64, fields models.PlanetFields) (models.Planet, error) {
	if err := ctx.Err(); err != nil {
		return models.Planet{}, err
	}
	return s.store.UpdatePlanet(ctx, id, fields)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePlanet(ctx, id)
}
