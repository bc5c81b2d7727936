package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gestionusuarios/userhub/internal/model"
	"gestionusuarios/userhub/internal/testutil"
)

func seedUserType(t *testing.T, db *gorm.DB, name string) model.UserType {
	t.Helper()
	ut := model.UserType{Name: name}
	require.NoError(t, db.Create(&ut).Error)
	return ut
}

func newClient(userTypeID uint, email, rut string) *model.Client {
	return &model.Client{
		User: model.User{
			Name:       "Cliente Uno",
			Email:      email,
			Password:   "secret",
			BirthDate:  "1990-05-05",
			RUT:        rut,
			UserTypeID: userTypeID,
		},
		ShippingAddress: "Calle Falsa 123",
	}
}

func TestAccountRepository_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ut := seedUserType(t, db, "CLIENTE")
	repo := NewGormAccountRepository[model.Client](db)

	c := newClient(ut.ID, "c1@test.com", "11111111-1")
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.UserID)
	assert.Equal(t, c.User.ID, c.UserID)
	assert.Equal(t, model.KindClient, c.User.Kind)

	got, err := repo.GetByID(ctx, c.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Calle Falsa 123", got.ShippingAddress)
	assert.Equal(t, "c1@test.com", got.User.Email)
	assert.Equal(t, "CLIENTE", got.User.UserType.Name)

	got.ShippingAddress = "Avenida Siempre Viva 742"
	got.User.Name = "Cliente Renombrado"
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, c.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Avenida Siempre Viva 742", again.ShippingAddress)
	assert.Equal(t, "Cliente Renombrado", again.User.Name)

	exists, err := repo.Exists(ctx, c.UserID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, c.UserID))
	_, err = repo.GetByID(ctx, c.UserID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestAccountRepository_KindsAreIsolated(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ut := seedUserType(t, db, "ADMIN")

	admins := NewGormAccountRepository[model.Administrator](db)
	clients := NewGormAccountRepository[model.Client](db)

	a := &model.Administrator{User: model.User{
		Name: "Admin Uno", Email: "admin1@test.com", Password: "pw",
		BirthDate: "2000-01-01", RUT: "11111111-1", UserTypeID: ut.ID,
	}}
	require.NoError(t, admins.Create(ctx, a))

	_, err := clients.GetByID(ctx, a.UserID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	list, err := admins.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ADMIN", list[0].User.UserType.Name)

	// an administrator has no columns of its own; update touches only usuarios
	list[0].User.Name = "Admin Dos"
	require.NoError(t, admins.Update(ctx, &list[0]))
	got, err := admins.GetByID(ctx, a.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Admin Dos", got.User.Name)
}

func TestAccountRepository_UniqueAcrossKinds(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ut := seedUserType(t, db, "MIXTO")

	clients := NewGormAccountRepository[model.Client](db)
	sellers := NewGormAccountRepository[model.SalesEmployee](db)

	require.NoError(t, clients.Create(ctx, newClient(ut.ID, "dup@test.com", "22222222-2")))

	e := &model.SalesEmployee{
		User: model.User{
			Name: "Vendedor", Email: "dup@test.com", Password: "pw",
			RUT: "33333333-3", UserTypeID: ut.ID,
		},
		HireDate: "2020-01-01",
		Salary:   decimal.RequireFromString("850000"),
	}
	err := sellers.Create(ctx, e)
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))

	// the failed insert left no partial rows behind
	var n int64
	require.NoError(t, db.Model(&model.User{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestAccountRepository_SalesEmployeeSalary(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ut := seedUserType(t, db, "VENTAS")
	repo := NewGormAccountRepository[model.SalesEmployee](db)

	e := &model.SalesEmployee{
		User: model.User{
			Name: "Vendedor", Email: "v@test.com", Password: "pw",
			RUT: "44444444-4", UserTypeID: ut.ID,
		},
		HireDate: "2021-03-01",
		Salary:   decimal.RequireFromString("1250.50"),
	}
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.UserID)
	require.NoError(t, err)
	assert.True(t, got.Salary.Equal(decimal.RequireFromString("1250.50")), got.Salary.String())
	assert.Equal(t, "2021-03-01", got.HireDate)
}
