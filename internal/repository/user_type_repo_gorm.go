package repository

import (
	"context"

	"gorm.io/gorm"

	"gestionusuarios/userhub/internal/model"
)

type gormUserTypeRepository struct {
	db *gorm.DB
}

func NewGormUserTypeRepository(db *gorm.DB) UserTypeRepository {
	return &gormUserTypeRepository{db: db}
}

func (r *gormUserTypeRepository) List(ctx context.Context) ([]model.UserType, error) {
	var userTypes []model.UserType
	err := conn(ctx, r.db).Order("id").Find(&userTypes).Error
	return userTypes, err
}

func (r *gormUserTypeRepository) GetByID(ctx context.Context, id uint) (*model.UserType, error) {
	var userType model.UserType
	if err := conn(ctx, r.db).First(&userType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &userType, nil
}

func (r *gormUserTypeRepository) Create(ctx context.Context, userType *model.UserType) error {
	return conn(ctx, r.db).Create(userType).Error
}

func (r *gormUserTypeRepository) Update(ctx context.Context, userType *model.UserType) error {
	return conn(ctx, r.db).Save(userType).Error
}
