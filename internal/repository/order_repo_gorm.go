package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gestionusuarios/userhub/internal/model"
)

type gormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

// withClient preloads the owning client. Without a transaction in ctx the
// preload runs as its own statement and is not a snapshot of the order rows.
func (r *gormOrderRepository) withClient(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Preload("Client.User.UserType")
}

func (r *gormOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.withClient(ctx).Order("id").Find(&orders).Error
	return orders, err
}

func (r *gormOrderRepository) ListByClientID(ctx context.Context, clientID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.withClient(ctx).Where("cliente_id = ?", clientID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.withClient(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&model.Order{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *gormOrderRepository) Create(ctx context.Context, order *model.Order) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(order).Error
}

func (r *gormOrderRepository) Update(ctx context.Context, order *model.Order) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(order).Error
}

func (r *gormOrderRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Delete(&model.Order{}, "id = ?", id).Error
}

func (r *gormOrderRepository) DeleteByClientID(ctx context.Context, clientID uint) (int64, error) {
	res := conn(ctx, r.db).Where("cliente_id = ?", clientID).Delete(&model.Order{})
	return res.RowsAffected, res.Error
}
