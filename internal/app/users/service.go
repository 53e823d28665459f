package users

import (
	"context"

	"starwarsapi/internal/models"
)

// Store describes the persistence operations required by the user service.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, fields models.UserFields) (models.User, error)
	UpdateUser(ctx context.Context, id int64, fields models.UserFields) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Service exposes user-related workflows.
type Service interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, fields models.UserFields) (models.User, error)
	Update(ctx context.Context, id int64, fields models.UserFields) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.GetUser(ctx, id)
}

func (s *service) Create(ctx context.Context, fields models.UserFields) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.CreateUser(ctx, fields)
}

func (s *service) Update(ctx context.Context, id int64, fields models.UserFields) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.UpdateUser(ctx, id, fields)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteUser(ctx, id)
}
