package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modublog/blog-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran on this route; a
// missing id on a protected route means the route was wired wrong, and the
// request is rejected rather than handled with no identity.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
