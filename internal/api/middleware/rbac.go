package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/api/metrics"
	"github.com/bizcore/erp-api/internal/core/domain"
)

// Require enforces role-based access control for one permission. It is
// applied per route at registration time, so no handler carries its own
// permission check and no route can accidentally skip one.
//
// Roles outside the known set are denied (fail closed), which Require
// inherits from domain.RoleAllows.
func Require(perm domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if !domain.RoleAllows(domain.Role(role), perm) {
				metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}
