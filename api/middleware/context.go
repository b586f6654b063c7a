package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextUserIDKey  = "auth_user_id"
	contextIsAdminKey = "auth_is_admin"
	contextSessionKey = "auth_session_id"
)

func SetAuthContext(c echo.Context, userID uuid.UUID, isAdmin bool, sessionID uuid.UUID) {
	c.Set(contextUserIDKey, userID)
	c.Set(contextIsAdminKey, isAdmin)
	c.Set(contextSessionKey, sessionID)
}

func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	value := c.Get(contextUserIDKey)
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func IsAdminFromContext(c echo.Context) (bool, bool) {
	value := c.Get(contextIsAdminKey)
	isAdmin, ok := value.(bool)
	return isAdmin, ok
}

func SessionIDFromContext(c echo.Context) (uuid.UUID, bool) {
	value := c.Get(contextSessionKey)
	sessionID, ok := value.(uuid.UUID)
	return sessionID, ok
}
