package service

import (
	"context"
	"testing"

	"driveincinema/internal/entity"
	"driveincinema/internal/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCard = "4111 1111 1111 1111"

func newOrderEnv() (*OrderService, *fakeOrders, *fakeProducts, *fakeSecurityLogs) {
	orders := newFakeOrders()
	products := newFakeProducts()
	logs := &fakeSecurityLogs{}
	m := metrics.New(prometheus.NewRegistry())
	return NewOrderService(orders, products, logs, m), orders, products, logs
}

func ticketInput() CreateOrderInput {
	price := decimal.RequireFromString("30.00")
	return CreateOrderInput{
		MovieID:    "603",
		MovieTitle: "The Matrix",
		Date:       "2026-10-20",
		Time:       "20:00",
		Slot:       "A1",
		Vehicle:    "sedan",
		Price:      &price,
		CardNumber: validCard,
	}
}

func TestCreateOrder(t *testing.T) {
	svc, _, _, _ := newOrderEnv()
	actor := Actor{UserID: uuid.New()}

	order, err := svc.Create(context.Background(), actor, ticketInput())
	require.NoError(t, err)
	assert.Equal(t, actor.UserID, order.UserID)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.True(t, decimal.RequireFromString("30").Equal(order.Price))
}

func TestCreateOrderUserMustBeCaller(t *testing.T) {
	svc, orders, _, _ := newOrderEnv()
	actor := Actor{UserID: uuid.New()}

	input := ticketInput()
	input.UserID = &actor.UserID
	order, err := svc.Create(context.Background(), actor, input)
	require.NoError(t, err)
	assert.Equal(t, actor.UserID, order.UserID)

	other := uuid.New()
	input = ticketInput()
	input.Slot = "A2"
	input.UserID = &other
	_, err = svc.Create(context.Background(), actor, input)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Len(t, orders.byID, 1)
}

func TestCreateOrderRejectsBadCard(t *testing.T) {
	svc, orders, _, _ := newOrderEnv()
	input := ticketInput()
	input.CardNumber = "4111 1111 1111 1112"

	_, err := svc.Create(context.Background(), Actor{UserID: uuid.New()}, input)
	assert.ErrorIs(t, err, ErrInvalidCard)
	assert.Empty(t, orders.byID)
}

func TestCreateOrderRequiresPriceWithoutProduct(t *testing.T) {
	svc, _, _, _ := newOrderEnv()
	input := ticketInput()
	input.Price = nil
	_, err := svc.Create(context.Background(), Actor{UserID: uuid.New()}, input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	negative := decimal.NewFromInt(-1)
	input.Price = &negative
	_, err = svc.Create(context.Background(), Actor{UserID: uuid.New()}, input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooLarge := decimal.RequireFromString("100000000")
	input.Price = &tooLarge
	_, err = svc.Create(context.Background(), Actor{UserID: uuid.New()}, input)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateOrderUsesCatalogPrice(t *testing.T) {
	svc, _, products, _ := newOrderEnv()
	ctx := context.Background()
	ticket := &entity.Product{Name: "Carro", Category: "ingresso", Price: decimal.RequireFromString("45.00"), Available: true}
	require.NoError(t, products.Create(ctx, ticket))

	input := ticketInput()
	input.ProductID = &ticket.ID
	order, err := svc.Create(ctx, Actor{UserID: uuid.New()}, input)
	require.NoError(t, err)
	assert.True(t, ticket.Price.Equal(order.Price))

	products.byID[ticket.ID].Available = false
	input.Slot = "A2"
	_, err = svc.Create(ctx, Actor{UserID: uuid.New()}, input)
	assert.ErrorIs(t, err, ErrProductUnavailable)

	missing := uuid.New()
	input.ProductID = &missing
	_, err = svc.Create(ctx, Actor{UserID: uuid.New()}, input)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderSlotTaken(t *testing.T) {
	svc, _, _, _ := newOrderEnv()
	ctx := context.Background()

	_, err := svc.Create(ctx, Actor{UserID: uuid.New()}, ticketInput())
	require.NoError(t, err)
	_, err = svc.Create(ctx, Actor{UserID: uuid.New()}, ticketInput())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListOrders(t *testing.T) {
	svc, _, _, _ := newOrderEnv()
	ctx := context.Background()
	ana := Actor{UserID: uuid.New()}
	bob := Actor{UserID: uuid.New()}

	first, err := svc.Create(ctx, ana, ticketInput())
	require.NoError(t, err)
	input := ticketInput()
	input.Slot = "A2"
	second, err := svc.Create(ctx, ana, input)
	require.NoError(t, err)
	input.Slot = "A3"
	_, err = svc.Create(ctx, bob, input)
	require.NoError(t, err)

	mine, err := svc.List(ctx, ana, false)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	_, err = svc.List(ctx, ana, true)
	assert.ErrorIs(t, err, ErrForbidden)

	all, err := svc.List(ctx, Actor{UserID: uuid.New(), IsAdmin: true}, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _, _, logs := newOrderEnv()
	ctx := context.Background()
	admin := Actor{UserID: uuid.New(), IsAdmin: true}
	order, err := svc.Create(ctx, Actor{UserID: uuid.New()}, ticketInput())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, admin, order.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, updated.Status)
	assert.Equal(t, order.Slot, updated.Slot)
	assert.True(t, order.Price.Equal(updated.Price))
	assert.Equal(t, []entity.SecurityAction{entity.OrderStatusChanged}, logs.actions())

	_, err = svc.UpdateStatus(ctx, admin, order.ID, "pending")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, admin, order.ID, "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, admin, uuid.New(), "cancelled")
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err = svc.UpdateStatus(ctx, admin, order.ID, "fulfilled")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderFulfilled, updated.Status)

	_, err = svc.UpdateStatus(ctx, admin, order.ID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
