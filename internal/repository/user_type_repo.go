package repository

import (
	"context"

	"gestionusuarios/userhub/internal/model"
)

type UserTypeRepository interface {
	List(ctx context.Context) ([]model.UserType, error)
	GetByID(ctx context.Context, id uint) (*model.UserType, error)
	Create(ctx context.Context, userType *model.UserType) error
	Update(ctx context.Context, userType *model.UserType) error
}
