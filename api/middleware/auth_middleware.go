package middleware

import (
	"errors"
	"net/http"
	"strings"

	"driveincinema/internal/repository"
	"driveincinema/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccessTokenCookie is the HttpOnly cookie set at login.
const AccessTokenCookie = "access_token"

var errUnauthenticated = errors.New("unauthenticated")

type AuthMiddleware struct {
	JWT      *utils.JWTManager
	Sessions repository.SessionRepository
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := m.authenticate(c)
		if errors.Is(err, errUnauthenticated) {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
		}
		return next(c)
	}
}

// AdminPageGate sends anyone without an admin session back to the home page.
func (m AuthMiddleware) AdminPageGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := m.authenticate(c); err != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		if isAdmin, _ := IsAdminFromContext(c); !isAdmin {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}

// authenticate validates the access token and its session, then stores the
// caller in the echo context.
func (m AuthMiddleware) authenticate(c echo.Context) error {
	if m.JWT == nil {
		return errUnauthenticated
	}
	token := extractBearerToken(c.Request())
	if token == "" {
		token = extractCookieToken(c)
	}
	if token == "" {
		return errUnauthenticated
	}
	claims, err := m.JWT.ParseAccessToken(token)
	if err != nil {
		return errUnauthenticated
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return errUnauthenticated
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return errUnauthenticated
	}
	if m.Sessions != nil {
		session, err := m.Sessions.FindActiveByID(c.Request().Context(), sessionID)
		if err != nil {
			return err
		}
		if session == nil || session.UserID != userID {
			return errUnauthenticated
		}
	}
	SetAuthContext(c, userID, claims.IsAdmin, sessionID)
	return nil
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func extractCookieToken(c echo.Context) string {
	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
