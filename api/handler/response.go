package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"driveincinema/api/middleware"
	"driveincinema/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var errInvalidBody = errors.New("invalid request body")

var serviceErrorStatus = []struct {
	err    error
	status int
}{
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrInvalidCode, http.StatusBadRequest},
	{service.ErrCodeExpired, http.StatusBadRequest},
	{service.ErrInvalidCard, http.StatusBadRequest},
	{service.ErrInvalidStatus, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrEmailNotVerified, http.StatusForbidden},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrEmailAlreadyRegistered, http.StatusConflict},
	{service.ErrConflict, http.StatusConflict},
	{service.ErrInvalidTransition, http.StatusConflict},
	{service.ErrProductUnavailable, http.StatusConflict},
	{service.ErrTooManyRequests, http.StatusTooManyRequests},
	{service.ErrNotConfigured, http.StatusInternalServerError},
	{service.ErrUpstream, http.StatusInternalServerError},
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return errInvalidBody
	}
	return nil
}

// bind decodes and validates the request body into target.
func bind(c echo.Context, v *validator.Validate, target any) error {
	if err := decodeJSON(c, target); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return v.Struct(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"error": err.Error()})
}

// writeServiceError maps a service sentinel to its status and fixed message.
// Anything else becomes a 500 whose cause is logged by the request logger.
func writeServiceError(c echo.Context, err error) error {
	for _, mapping := range serviceErrorStatus {
		if errors.Is(err, mapping.err) {
			if mapping.status >= http.StatusInternalServerError {
				return echo.NewHTTPError(mapping.status, mapping.err.Error()).SetInternal(err)
			}
			return writeError(c, mapping.status, mapping.err)
		}
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
}

// ErrorHandler renders every echo error as {"error": message}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	message := "internal server error"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if text, ok := httpErr.Message.(string); ok {
			message = text
		} else {
			message = strings.ToLower(http.StatusText(status))
		}
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, map[string]string{"error": message})
}

func actorFromContext(c echo.Context) (service.Actor, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return service.Actor{}, false
	}
	isAdmin, _ := middleware.IsAdminFromContext(c)
	return service.Actor{
		UserID:    userID,
		IsAdmin:   isAdmin,
		IPAddress: stringPtr(c.RealIP()),
	}, true
}

func unauthorized(c echo.Context) error {
	return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
