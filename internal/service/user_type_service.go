package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/mapper"
	"gestionusuarios/userhub/internal/repository"
	"gestionusuarios/userhub/internal/validation"
)

// UserTypeService manages the classification catalog. User types are never
// deleted through the API.
type UserTypeService interface {
	List(ctx context.Context) ([]dto.UserTypeResponse, error)
	Get(ctx context.Context, id uint) (*dto.UserTypeResponse, error)
	Create(ctx context.Context, req *dto.UserTypeRequest) (*dto.UserTypeResponse, error)
	Update(ctx context.Context, id uint, req *dto.UserTypeRequest) (*dto.UserTypeResponse, error)
}

type userTypeService struct {
	userTypes repository.UserTypeRepository
	validator *validation.Validator
	logger    *zap.Logger
}

func NewUserTypeService(userTypes repository.UserTypeRepository, v *validation.Validator, logger *zap.Logger) UserTypeService {
	return &userTypeService{userTypes: userTypes, validator: v, logger: logger}
}

func (s *userTypeService) List(ctx context.Context) ([]dto.UserTypeResponse, error) {
	userTypes, err := s.userTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user types: %w", err)
	}
	out := make([]dto.UserTypeResponse, 0, len(userTypes))
	for i := range userTypes {
		out = append(out, *mapper.UserTypeToResponse(&userTypes[i]))
	}
	return out, nil
}

func (s *userTypeService) Get(ctx context.Context, id uint) (*dto.UserTypeResponse, error) {
	userType, err := lookupUserType(ctx, s.userTypes, id)
	if err != nil {
		return nil, err
	}
	return mapper.UserTypeToResponse(userType), nil
}

func (s *userTypeService) Create(ctx context.Context, req *dto.UserTypeRequest) (*dto.UserTypeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", validation.ErrInvalid)
	}
	if err := s.validator.Create(req); err != nil {
		return nil, err
	}

	userType := mapper.UserTypeToEntity(req)
	if err := s.userTypes.Create(ctx, userType); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, &ConflictError{Resource: ResourceUserType, Err: err}
		}
		return nil, fmt.Errorf("create user type: %w", err)
	}

	s.logger.Info("user type created", zap.Uint("id", userType.ID), zap.String("name", userType.Name))
	return mapper.UserTypeToResponse(userType), nil
}

func (s *userTypeService) Update(ctx context.Context, id uint, req *dto.UserTypeRequest) (*dto.UserTypeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", validation.ErrInvalid)
	}
	if err := s.validator.Update(req); err != nil {
		return nil, err
	}

	userType, err := lookupUserType(ctx, s.userTypes, id)
	if err != nil {
		return nil, err
	}
	mapper.MergeUserType(req, userType)
	if err := s.userTypes.Update(ctx, userType); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, &ConflictError{Resource: ResourceUserType, Err: err}
		}
		return nil, fmt.Errorf("update user type %d: %w", id, err)
	}

	s.logger.Info("user type updated", zap.Uint("id", id))
	return mapper.UserTypeToResponse(userType), nil
}
