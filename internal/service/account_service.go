package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/mapper"
	"gestionusuarios/userhub/internal/model"
	"gestionusuarios/userhub/internal/repository"
	"gestionusuarios/userhub/internal/validation"
)

// AccountService is the CRUD surface shared by every user kind.
type AccountService[Req, Resp any] interface {
	List(ctx context.Context) ([]Resp, error)
	Get(ctx context.Context, id uint) (*Resp, error)
	Create(ctx context.Context, req *Req) (*Resp, error)
	Update(ctx context.Context, id uint, req *Req) (*Resp, error)
	Delete(ctx context.Context, id uint) error
}

type (
	AdministratorService = AccountService[dto.AdministratorRequest, dto.AdministratorResponse]
	ClientService        = AccountService[dto.ClientRequest, dto.ClientResponse]
	SalesEmployeeService = AccountService[dto.SalesEmployeeRequest, dto.SalesEmployeeResponse]
	StoreManagerService  = AccountService[dto.StoreManagerRequest, dto.StoreManagerResponse]
)

type accountService[T any, P repository.AccountPtr[T], Req dto.AccountPayload, Resp any] struct {
	resource  string
	tx        repository.Transactor
	accounts  repository.AccountRepository[T]
	userTypes repository.UserTypeRepository
	mapper    mapper.AccountMapper[T, Req, Resp]
	validator *validation.Validator
	logger    *zap.Logger

	// beforeDelete runs inside the delete transaction, after the existence check.
	beforeDelete func(ctx context.Context, id uint) error
}

func NewAdministratorService(
	tx repository.Transactor,
	admins repository.AccountRepository[model.Administrator],
	userTypes repository.UserTypeRepository,
	v *validation.Validator,
	logger *zap.Logger,
) AdministratorService {
	return &accountService[model.Administrator, *model.Administrator, dto.AdministratorRequest, dto.AdministratorResponse]{
		resource:  ResourceAdministrator,
		tx:        tx,
		accounts:  admins,
		userTypes: userTypes,
		mapper:    mapper.AdministratorMapper{},
		validator: v,
		logger:    logger,
	}
}

// NewClientService builds the client service. Deleting a client deletes
// its orders in the same transaction.
func NewClientService(
	tx repository.Transactor,
	clients repository.AccountRepository[model.Client],
	orders repository.OrderRepository,
	userTypes repository.UserTypeRepository,
	v *validation.Validator,
	logger *zap.Logger,
) ClientService {
	return &accountService[model.Client, *model.Client, dto.ClientRequest, dto.ClientResponse]{
		resource:  ResourceClient,
		tx:        tx,
		accounts:  clients,
		userTypes: userTypes,
		mapper:    mapper.ClientMapper{},
		validator: v,
		logger:    logger,
		beforeDelete: func(ctx context.Context, id uint) error {
			n, err := orders.DeleteByClientID(ctx, id)
			if err != nil {
				return fmt.Errorf("delete orders of client %d: %w", id, err)
			}
			if n > 0 {
				logger.Info("client orders deleted", zap.Uint("client_id", id), zap.Int64("count", n))
			}
			return nil
		},
	}
}

func NewSalesEmployeeService(
	tx repository.Transactor,
	employees repository.AccountRepository[model.SalesEmployee],
	userTypes repository.UserTypeRepository,
	v *validation.Validator,
	logger *zap.Logger,
) SalesEmployeeService {
	return &accountService[model.SalesEmployee, *model.SalesEmployee, dto.SalesEmployeeRequest, dto.SalesEmployeeResponse]{
		resource:  ResourceSalesEmployee,
		tx:        tx,
		accounts:  employees,
		userTypes: userTypes,
		mapper:    mapper.SalesEmployeeMapper{},
		validator: v,
		logger:    logger,
	}
}

func NewStoreManagerService(
	tx repository.Transactor,
	managers repository.AccountRepository[model.StoreManager],
	userTypes repository.UserTypeRepository,
	v *validation.Validator,
	logger *zap.Logger,
) StoreManagerService {
	return &accountService[model.StoreManager, *model.StoreManager, dto.StoreManagerRequest, dto.StoreManagerResponse]{
		resource:  ResourceStoreManager,
		tx:        tx,
		accounts:  managers,
		userTypes: userTypes,
		mapper:    mapper.StoreManagerMapper{},
		validator: v,
		logger:    logger,
	}
}

func (s *accountService[T, P, Req, Resp]) List(ctx context.Context) ([]Resp, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.resource, err)
	}
	out := make([]Resp, 0, len(accounts))
	for i := range accounts {
		out = append(out, *s.mapper.ToResponse(&accounts[i]))
	}
	return out, nil
}

func (s *accountService[T, P, Req, Resp]) Get(ctx context.Context, id uint) (*Resp, error) {
	account, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(account), nil
}

func (s *accountService[T, P, Req, Resp]) get(ctx context.Context, id uint) (*T, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(s.resource, id)
		}
		return nil, fmt.Errorf("get %s %d: %w", s.resource, id, err)
	}
	return account, nil
}

func (s *accountService[T, P, Req, Resp]) Create(ctx context.Context, req *Req) (*Resp, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", validation.ErrInvalid)
	}
	if err := s.validator.Create(req); err != nil {
		return nil, err
	}

	var account *T
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		userType, err := lookupUserType(ctx, s.userTypes, *(*req).Account().UserTypeID)
		if err != nil {
			return err
		}
		account = s.mapper.ToEntity(req)
		base := P(account).Base()
		base.UserTypeID = userType.ID
		base.UserType = *userType
		if err := s.accounts.Create(ctx, account); err != nil {
			return s.writeError("create", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(s.resource+" created", zap.Uint("id", P(account).Base().ID))
	return s.mapper.ToResponse(account), nil
}

func (s *accountService[T, P, Req, Resp]) Update(ctx context.Context, id uint, req *Req) (*Resp, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", validation.ErrInvalid)
	}
	if err := s.validator.Update(req); err != nil {
		return nil, err
	}

	var account *T
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if account, err = s.get(ctx, id); err != nil {
			return err
		}
		base := P(account).Base()
		if utID := (*req).Account().UserTypeID; utID != nil && *utID != base.UserTypeID {
			userType, err := lookupUserType(ctx, s.userTypes, *utID)
			if err != nil {
				return err
			}
			base.UserTypeID = userType.ID
			base.UserType = *userType
		}
		s.mapper.Merge(req, account)
		if err := s.accounts.Update(ctx, account); err != nil {
			return s.writeError("update", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(s.resource+" updated", zap.Uint("id", id))
	return s.mapper.ToResponse(account), nil
}

func (s *accountService[T, P, Req, Resp]) Delete(ctx context.Context, id uint) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.accounts.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check %s %d: %w", s.resource, id, err)
		}
		if !exists {
			return notFound(s.resource, id)
		}
		if s.beforeDelete != nil {
			if err := s.beforeDelete(ctx, id); err != nil {
				return err
			}
		}
		if err := s.accounts.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete %s %d: %w", s.resource, id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(s.resource+" deleted", zap.Uint("id", id))
	return nil
}

func (s *accountService[T, P, Req, Resp]) writeError(op string, err error) error {
	if repository.IsDuplicateKey(err) {
		return &ConflictError{Resource: s.resource, Err: err}
	}
	return fmt.Errorf("%s %s: %w", op, s.resource, err)
}

func lookupUserType(ctx context.Context, repo repository.UserTypeRepository, id uint) (*model.UserType, error) {
	userType, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(ResourceUserType, id)
		}
		return nil, fmt.Errorf("get user type %d: %w", id, err)
	}
	return userType, nil
}
