package people

import (
	"context"

	"starwarsapi/internal/models"
)

// Store defines persistence operations required for people workflows.
type Store interface {
	ListPeople(ctx context.Context) ([]models.Person, error)
	GetPerson(ctx context.Context, id int64) (models.Person, error)
	CreatePerson(ctx context.Context, fields models.PersonFields) (models.Person, error)
	UpdatePerson(ctx context.Context, id int64, fields models.PersonFields) (models.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// Service exposes CRUD over the people catalogue.
type Service interface {
	List(ctx context.Context) ([]models.Person, error)
	Get(ctx context.Context, id int64) (models.Person, error)
	Create(ctx context.Context, fields models.PersonFields) (models.Person, error)
	Update(ctx context.Context, id int64, fields models.PersonFields) (models.Person, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a people Service backed by the given store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPeople(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (models.Person, error) {
	if err := ctx.Err(); err != nil {
		return models.Person{}, err
	}
	return s.store.GetPerson(ctx, id)
}

func (s *service) Create(ctx context.Context, fields models.PersonFields) (models.Person, error) {
	if err := ctx.Err(); err != nil {
		return models.Person{}, err
	}
	return s.store.CreatePerson(ctx, fields)
}

func (s *service) Update(ctx context.Context, id int64, fields models.PersonFields) (models.Person, error) {
	if err := ctx.Err(); err != nil {
		return models.Person{}, err
	}
	return s.store.UpdatePerson(ctx, id, fields)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePerson(ctx, id)
}
