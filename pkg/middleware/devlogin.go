package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevLogin assigns a user id from the GROW_UID cookie, the ?uid query
// param, or a fixed dev default, in that order. It always lets the
// request through; use RequireUser for strict deployments.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("GROW_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
				}
				c.SetCookie(&http.Cookie{Name: "GROW_UID", Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
