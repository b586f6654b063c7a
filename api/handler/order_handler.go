package handler

import (
	"context"
	"net/http"
	"strconv"

	"driveincinema/internal/dto"
	"driveincinema/internal/entity"
	"driveincinema/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OrderService interface {
	Create(ctx context.Context, actor service.Actor, input service.CreateOrderInput) (*entity.Order, error)
	List(ctx context.Context, actor service.Actor, all bool) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, actor service.Actor, id uuid.UUID, status string) (*entity.Order, error)
}

type OrderHandler struct {
	Service  OrderService
	Validate *validator.Validate
}

func NewOrderHandler(svc OrderService, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{Service: svc, Validate: validate}
}

func (h *OrderHandler) Create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	var req dto.CreateOrderRequest
	if err := bind(c, h.Validate, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	order, err := h.Service.Create(c.Request().Context(), actor, service.CreateOrderInput{
		UserID:     req.UserID,
		ProductID:  req.ProductID,
		MovieID:    req.MovieID,
		MovieTitle: req.MovieTitle,
		Date:       req.Date,
		Time:       req.Time,
		Slot:       req.Slot,
		Vehicle:    req.Vehicle,
		Price:      req.Price,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	all, _ := strconv.ParseBool(c.QueryParam("all"))
	orders, err := h.Service.List(c.Request().Context(), actor, all)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateOrderStatusRequest
	if err := bind(c, h.Validate, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	order, err := h.Service.UpdateStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}
