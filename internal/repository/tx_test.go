package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionusuarios/userhub/internal/model"
	"gestionusuarios/userhub/internal/testutil"
)

func TestTransactor_RollbackOnError(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	tx := NewTransactor(db)
	repo := NewGormUserTypeRepository(db)
	boom := errors.New("boom")

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.Create(ctx, &model.UserType{Name: "TEMPORAL"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransactor_NestedJoinsOuter(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	tx := NewTransactor(db)
	repo := NewGormUserTypeRepository(db)

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return repo.Create(ctx, &model.UserType{Name: "ANIDADO"})
		})
	})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ANIDADO", list[0].Name)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
	assert.True(t, IsDuplicateKey(errors.New(`ERROR: duplicate key value violates unique constraint "idx_usuarios_email"`)))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: usuarios.email")))
}
