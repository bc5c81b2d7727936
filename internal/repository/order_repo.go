package repository

import (
	"context"

	"gestionusuarios/userhub/internal/model"
)

// OrderRepository reads orders with their client (and the client's user type) resolved.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	ListByClientID(ctx context.Context, clientID uint) ([]model.Order, error)
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id uint) error
	DeleteByClientID(ctx context.Context, clientID uint) (int64, error)
}
