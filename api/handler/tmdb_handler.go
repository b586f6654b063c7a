package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

type MovieSearcher interface {
	SearchMovies(ctx context.Context, query string) ([]json.RawMessage, error)
}

type TMDBHandler struct {
	Service MovieSearcher
}

func NewTMDBHandler(svc MovieSearcher) *TMDBHandler {
	return &TMDBHandler{Service: svc}
}

func (h *TMDBHandler) Search(c echo.Context) error {
	results, err := h.Service.SearchMovies(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}
