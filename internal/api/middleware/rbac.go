package middleware

import (
	"fmt"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// RBAC lets a request through only when the role placed in the context by Auth
// is one of roles. Denials surface as domain.ErrForbidden for the central
// error handler.
func RBAC(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" || !slices.Contains(roles, role) {
				return fmt.Errorf("%w: role %q on %s %s", domain.ErrForbidden, role, c.Request().Method, c.Path())
			}
			return next(c)
		}
	}
}
