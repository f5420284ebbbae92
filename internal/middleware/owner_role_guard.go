package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// オーナー専用ルート。従業員は403
func OwnerRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return unauthorized(c)
			}
			if !p.IsOwner() {
				return c.JSON(http.StatusForbidden, errorJSON("owner only"))
			}
			return next(c)
		}
	}
}
