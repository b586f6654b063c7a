package handler

import (
	"context"
	"errors"
	"net/http"

	"driveincinema/internal/dto"
	"driveincinema/internal/entity"
	"driveincinema/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, actor service.Actor, input service.ProductInput) (*entity.Product, error)
	Update(ctx context.Context, actor service.Actor, id uuid.UUID, patch service.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, actor service.Actor, id uuid.UUID) (*entity.Product, error)
}

type ProductHandler struct {
	Service  ProductService
	Validate *validator.Validate
}

func NewProductHandler(svc ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{Service: svc, Validate: validate}
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.Service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	var req dto.CreateProductRequest
	if err := bind(c, h.Validate, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	product, err := h.Service.Create(c.Request().Context(), actor, service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Available:   req.Available,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateProductRequest
	if err := bind(c, h.Validate, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	product, err := h.Service.Update(c.Request().Context(), actor, id, service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Available:   req.Available,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	product, err := h.Service.Delete(c.Request().Context(), actor, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}
