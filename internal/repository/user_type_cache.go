package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gestionusuarios/userhub/internal/model"
)

// cachedUserTypeRepository serves GetByID from a StateStore and falls back
// to the wrapped repository on a miss. Cache failures never fail a lookup.
type cachedUserTypeRepository struct {
	UserTypeRepository
	store  StateStore
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

func NewCachedUserTypeRepository(next UserTypeRepository, store StateStore, ttl time.Duration, prefix string, logger *zap.Logger) UserTypeRepository {
	return &cachedUserTypeRepository{
		UserTypeRepository: next,
		store:              store,
		ttl:                ttl,
		prefix:             prefix,
		logger:             logger,
	}
}

func (r *cachedUserTypeRepository) key(id uint) string {
	return fmt.Sprintf("%stipo_usuario:%d", r.prefix, id)
}

func (r *cachedUserTypeRepository) GetByID(ctx context.Context, id uint) (*model.UserType, error) {
	key := r.key(id)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warn("user type cache read failed", zap.String("key", key), zap.Error(err))
	}
	if data != nil {
		var userType model.UserType
		if err := json.Unmarshal(data, &userType); err == nil {
			return &userType, nil
		}
		r.logger.Warn("user type cache entry corrupt", zap.String("key", key))
	}

	userType, err := r.UserTypeRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(userType); err == nil {
		if err := r.store.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("user type cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return userType, nil
}

// Update drops the cached entry; the next GetByID reloads it from the store.
func (r *cachedUserTypeRepository) Update(ctx context.Context, userType *model.UserType) error {
	if err := r.UserTypeRepository.Update(ctx, userType); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, r.key(userType.ID)); err != nil {
		r.logger.Warn("user type cache invalidation failed", zap.Uint("id", userType.ID), zap.Error(err))
	}
	return nil
}
