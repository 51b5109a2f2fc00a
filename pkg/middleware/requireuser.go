package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUser reads the user id from the X-Grow-Uid header or the
// GROW_UID cookie and rejects requests that carry neither. When
// enabled is false it passes through so DevLogin can take over.
func RequireUser(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-Grow-Uid")
			if uid == "" {
				if ck, err := c.Cookie("GROW_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
