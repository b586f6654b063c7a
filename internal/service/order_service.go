package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"driveincinema/internal/entity"
	"driveincinema/internal/metrics"
	"driveincinema/internal/repository"
	"driveincinema/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	// UserID is optional; when set it must name the caller.
	UserID     *uuid.UUID
	ProductID  *uuid.UUID
	MovieID    string
	MovieTitle string
	Date       string
	Time       string
	Slot       string
	Vehicle    string
	Price      *decimal.Decimal
	CardNumber string
}

type OrderService struct {
	orders       repository.OrderRepository
	products     repository.ProductRepository
	securityLogs repository.SecurityLogRepository
	metrics      *metrics.Metrics
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	securityLogs repository.SecurityLogRepository,
	m *metrics.Metrics,
) *OrderService {
	return &OrderService{
		orders:       orders,
		products:     products,
		securityLogs: securityLogs,
		metrics:      m,
	}
}

// Create places a pending order for the caller. The card number is only
// checked for a valid Luhn checksum and is never stored.
func (s *OrderService) Create(ctx context.Context, actor Actor, input CreateOrderInput) (*entity.Order, error) {
	if input.UserID != nil && *input.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if !utils.ValidLuhn(input.CardNumber) {
		return nil, ErrInvalidCard
	}
	for _, value := range []string{input.MovieID, input.MovieTitle, input.Date, input.Time, input.Slot} {
		if strings.TrimSpace(value) == "" {
			return nil, ErrInvalidInput
		}
	}

	price, err := s.resolvePrice(ctx, input)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:     actor.UserID,
		ProductID:  input.ProductID,
		MovieID:    strings.TrimSpace(input.MovieID),
		MovieTitle: strings.TrimSpace(input.MovieTitle),
		Date:       strings.TrimSpace(input.Date),
		Time:       strings.TrimSpace(input.Time),
		Slot:       strings.TrimSpace(input.Slot),
		Vehicle:    strings.TrimSpace(input.Vehicle),
		Price:      price,
		Status:     entity.OrderPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("slot %s already taken: %w", order.Slot, ErrConflict)
		}
		return nil, err
	}
	s.metrics.OrderCreated()
	return order, nil
}

// resolvePrice prefers the catalog price of the referenced product over
// whatever the client sent.
func (s *OrderService) resolvePrice(ctx context.Context, input CreateOrderInput) (decimal.Decimal, error) {
	if input.ProductID == nil {
		if input.Price == nil || !validPrice(*input.Price) {
			return decimal.Zero, ErrInvalidInput
		}
		return *input.Price, nil
	}
	product, err := s.products.FindByID(ctx, *input.ProductID)
	if err != nil {
		return decimal.Zero, err
	}
	if product == nil {
		return decimal.Zero, ErrNotFound
	}
	if !product.Available {
		return decimal.Zero, ErrProductUnavailable
	}
	return product.Price, nil
}

// List returns the caller's orders, or every order when all is set. Only
// admins may list all.
func (s *OrderService) List(ctx context.Context, actor Actor, all bool) ([]entity.Order, error) {
	if all {
		if !actor.IsAdmin {
			return nil, ErrForbidden
		}
		return s.orders.ListAll(ctx)
	}
	return s.orders.ListByUser(ctx, actor.UserID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status string) (*entity.Order, error) {
	next, ok := entity.ParseOrderStatus(strings.TrimSpace(status))
	if !ok {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !order.Status.CanTransition(next) {
		return nil, fmt.Errorf("%s to %s: %w", order.Status, next, ErrInvalidTransition)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, order.Status, next)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrNotFound
	case errors.Is(err, repository.ErrStale):
		return nil, ErrInvalidTransition
	case err != nil:
		return nil, err
	}

	s.metrics.OrderTransitioned(string(next))
	_ = writeSecurityLog(ctx, s.securityLogs, &actor.UserID, actor.IPAddress, entity.OrderStatusChanged, map[string]any{
		"order_id": id.String(),
		"from":     string(order.Status),
		"to":       string(next),
	})
	return updated, nil
}
