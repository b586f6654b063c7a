package handler

import (
	"context"
	"net/http"

	"driveincinema/internal/dto"
	"driveincinema/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PointsService interface {
	Award(ctx context.Context, actor service.Actor, userID uuid.UUID, points int) (int, error)
}

type PointsHandler struct {
	Service  PointsService
	Validate *validator.Validate
}

func NewPointsHandler(svc PointsService, validate *validator.Validate) *PointsHandler {
	return &PointsHandler{Service: svc, Validate: validate}
}

func (h *PointsHandler) Add(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	var req dto.AddPointsRequest
	if err := bind(c, h.Validate, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	total, err := h.Service.Award(c.Request().Context(), actor, req.UserID, req.Points)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AddPointsResponse{Success: true, NewPoints: total})
}
