package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionusuarios/userhub/internal/model"
	"gestionusuarios/userhub/internal/testutil"
)

func TestOrderRepository_CRUDAndClientScope(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ut := seedUserType(t, db, "CLIENTE")
	clients := NewGormAccountRepository[model.Client](db)
	orders := NewGormOrderRepository(db)

	c1 := newClient(ut.ID, "c1@test.com", "11111111-1")
	c2 := newClient(ut.ID, "c2@test.com", "22222222-2")
	require.NoError(t, clients.Create(ctx, c1))
	require.NoError(t, clients.Create(ctx, c2))

	mk := func(clientID uint, total string) *model.Order {
		return &model.Order{
			OrderedAt:       time.Now().UTC(),
			Status:          "Pendiente",
			Total:           decimal.RequireFromString(total),
			ClientID:        clientID,
			ShippingAddress: "Calle Falsa 123",
			PaymentMethod:   "Tarjeta",
		}
	}
	o1 := mk(c1.UserID, "150.99")
	require.NoError(t, orders.Create(ctx, o1))
	require.NoError(t, orders.Create(ctx, mk(c1.UserID, "10")))
	require.NoError(t, orders.Create(ctx, mk(c2.UserID, "20")))

	got, err := orders.GetByID(ctx, o1.ID)
	require.NoError(t, err)
	assert.Equal(t, c1.UserID, got.Client.UserID)
	assert.Equal(t, "c1@test.com", got.Client.User.Email)
	assert.Equal(t, "CLIENTE", got.Client.User.UserType.Name)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("150.99")))

	byClient, err := orders.ListByClientID(ctx, c1.UserID)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	got.Status = "Enviado"
	got.ClientID = c2.UserID
	require.NoError(t, orders.Update(ctx, got))
	moved, err := orders.GetByID(ctx, o1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Enviado", moved.Status)
	assert.Equal(t, c2.UserID, moved.Client.UserID)

	n, err := orders.DeleteByClientID(ctx, c2.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	all, err := orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, c1.UserID, all[0].ClientID)

	require.NoError(t, orders.Delete(ctx, all[0].ID))
	exists, err := orders.Exists(ctx, all[0].ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
