package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
)

// viewMiddleware guards a route group behind the console area it belongs
// to, consulting the role gating table.
func viewMiddleware(view staff.View) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.Role.CanAccess(view) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
