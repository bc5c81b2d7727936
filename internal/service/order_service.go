package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/mapper"
	"gestionusuarios/userhub/internal/model"
	"gestionusuarios/userhub/internal/repository"
	"gestionusuarios/userhub/internal/validation"
)

type OrderService interface {
	List(ctx context.Context) ([]dto.OrderResponse, error)
	// ListByClient fails with a client NotFoundError when the client does not exist.
	ListByClient(ctx context.Context, clientID uint) ([]dto.OrderResponse, error)
	Get(ctx context.Context, id uint) (*dto.OrderResponse, error)
	Create(ctx context.Context, req *dto.OrderRequest) (*dto.OrderResponse, error)
	Update(ctx context.Context, id uint, req *dto.OrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id uint) error
}

type orderService struct {
	tx        repository.Transactor
	orders    repository.OrderRepository
	clients   repository.AccountRepository[model.Client]
	validator *validation.Validator
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderService(
	tx repository.Transactor,
	orders repository.OrderRepository,
	clients repository.AccountRepository[model.Client],
	v *validation.Validator,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		tx:        tx,
		orders:    orders,
		clients:   clients,
		validator: v,
		logger:    logger,
		// microsecond precision survives every supported database
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *orderService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) ListByClient(ctx context.Context, clientID uint) ([]dto.OrderResponse, error) {
	exists, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("check client %d: %w", clientID, err)
	}
	if !exists {
		return nil, notFound(ResourceClient, clientID)
	}
	orders, err := s.orders.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list orders of client %d: %w", clientID, err)
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) Get(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.OrderToResponse(order), nil
}

func (s *orderService) get(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(ResourceOrder, id)
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return order, nil
}

func (s *orderService) client(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(ResourceClient, id)
		}
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return client, nil
}

func (s *orderService) Create(ctx context.Context, req *dto.OrderRequest) (*dto.OrderResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", validation.ErrInvalid)
	}
	if err := s.validator.Create(req); err != nil {
		return nil, err
	}

	var order *model.Order
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		client, err := s.client(ctx, *req.ClientID)
		if err != nil {
			return err
		}
		order = mapper.OrderToEntity(req)
		order.OrderedAt = s.now()
		order.ClientID = client.UserID
		order.Client = *client
		if err := s.orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created", zap.Uint("id", order.ID), zap.Uint("client_id", order.ClientID))
	return mapper.OrderToResponse(order), nil
}

// Update keeps the order timestamp. The client is re-resolved only when
// the request names a different one.
func (s *orderService) Update(ctx context.Context, id uint, req *dto.OrderRequest) (*dto.OrderResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", validation.ErrInvalid)
	}
	if err := s.validator.Update(req); err != nil {
		return nil, err
	}

	var order *model.Order
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if order, err = s.get(ctx, id); err != nil {
			return err
		}
		if req.ClientID != nil && *req.ClientID != order.ClientID {
			client, err := s.client(ctx, *req.ClientID)
			if err != nil {
				return err
			}
			order.ClientID = client.UserID
			order.Client = *client
		}
		mapper.MergeOrder(req, order)
		if err := s.orders.Update(ctx, order); err != nil {
			return fmt.Errorf("update order %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order updated", zap.Uint("id", id))
	return mapper.OrderToResponse(order), nil
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.orders.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check order %d: %w", id, err)
		}
		if !exists {
			return notFound(ResourceOrder, id)
		}
		if err := s.orders.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete order %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("order deleted", zap.Uint("id", id))
	return nil
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *mapper.OrderToResponse(&orders[i]))
	}
	return out
}
