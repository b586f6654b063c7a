package handler

import (
	"context"
	"net/http"

	"driveincinema/internal/dto"
	"driveincinema/internal/service"

	"github.com/labstack/echo/v4"
)

type Dashboard interface {
	Dashboard(ctx context.Context) (*service.DashboardSummary, error)
}

type AdminHandler struct {
	Service Dashboard
}

func NewAdminHandler(svc Dashboard) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	summary, err := h.Service.Dashboard(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DashboardResponseFromSummary(summary))
}
