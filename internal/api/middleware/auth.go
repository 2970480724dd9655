package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/api/metrics"
	"github.com/bizcore/erp-api/internal/core/ports"
)

// Context keys set by Auth on success.
const (
	CtxUserID  = "user_id"
	CtxRole    = "role"
	CtxTokenID = "token_id"
)

// Auth authenticates the request: it extracts the bearer token, verifies
// the signature and expiry, and confirms the session behind the token is
// still live (logout revokes it before the signed expiry). On success
// the resolved identity and role are injected into the request context —
// the only inputs the permission check and the audit trail need.
func Auth(tokens ports.TokenService, sessions ports.SessionDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDenialsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthDenialsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			live, err := sessions.Exists(c.Request().Context(), claims.TokenID)
			if err != nil {
				return err
			}
			if !live {
				metrics.AuthDenialsTotal.WithLabelValues("session_expired").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, string(claims.Role))
			c.Set(CtxTokenID, claims.TokenID)

			return next(c)
		}
	}
}
