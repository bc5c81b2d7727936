package repository

import (
	"context"

	"gestionusuarios/userhub/internal/model"
)

// AccountRepository persists one concrete user kind together with its
// shared usuarios row. Reads always resolve the user type.
type AccountRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, account *T) error
	Update(ctx context.Context, account *T) error
	Delete(ctx context.Context, id uint) error
}

// AccountPtr constrains T to the user kinds declared in model.
type AccountPtr[T any] interface {
	*T
	model.Account
}
