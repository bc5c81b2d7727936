package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gestionusuarios/userhub/internal/model"
)

type gormAccountRepository[T any, P AccountPtr[T]] struct {
	db *gorm.DB
}

// NewGormAccountRepository builds the repository for one user kind, e.g.
// NewGormAccountRepository[model.Client](db).
func NewGormAccountRepository[T any, P AccountPtr[T]](db *gorm.DB) AccountRepository[T] {
	return &gormAccountRepository[T, P]{db: db}
}

// Reads join the ctx transaction when there is one. Outside a transaction the
// preload is a separate statement, so a concurrent write may land between the
// account rows and their user rows.
func (r *gormAccountRepository[T, P]) List(ctx context.Context) ([]T, error) {
	var accounts []T
	err := conn(ctx, r.db).
		Preload("User.UserType").
		Order("usuario_id").
		Find(&accounts).Error
	return accounts, err
}

func (r *gormAccountRepository[T, P]) GetByID(ctx context.Context, id uint) (*T, error) {
	var account T
	if err := conn(ctx, r.db).Preload("User.UserType").First(&account, "usuario_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *gormAccountRepository[T, P]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(new(T)).Where("usuario_id = ?", id).Count(&n).Error
	return n > 0, err
}

// Create inserts the usuarios row first, then the kind row keyed by its id.
func (r *gormAccountRepository[T, P]) Create(ctx context.Context, account *T) error {
	acc := P(account)
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		base := acc.Base()
		base.Kind = acc.Kind()
		if err := tx.Omit(clause.Associations).Create(base).Error; err != nil {
			return err
		}
		acc.LinkUser()
		return tx.Omit(clause.Associations).Create(account).Error
	})
}

func (r *gormAccountRepository[T, P]) Update(ctx context.Context, account *T) error {
	acc := P(account)
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(acc.Base()).Error; err != nil {
			return err
		}
		cols, err := kindColumns(tx, account)
		if err != nil {
			return err
		}
		// administradores has no columns of its own
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(account).Omit(clause.Associations).Select(cols).Updates(account).Error
	})
}

func (r *gormAccountRepository[T, P]) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", id).Delete(new(T)).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, "id = ?", id).Error
	})
}

// kindColumns lists the non-key columns of a kind table.
func kindColumns(tx *gorm.DB, account any) ([]string, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(account); err != nil {
		return nil, err
	}
	var cols []string
	for _, f := range stmt.Schema.Fields {
		if f.DBName != "" && !f.PrimaryKey {
			cols = append(cols, f.DBName)
		}
	}
	return cols, nil
}
