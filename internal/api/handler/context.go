package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/api/middleware"
	"github.com/bizcore/erp-api/internal/core/domain"
)

// ctxActor extracts the identity injected by the Auth middleware. A
// positive user id proves the middleware ran; without it the handler
// fails before any service call.
func ctxActor(c echo.Context) (userID int64, role domain.Role, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(int64)
	if userID <= 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	roleStr, _ := c.Get(middleware.CtxRole).(string)
	return userID, domain.Role(roleStr), nil
}
