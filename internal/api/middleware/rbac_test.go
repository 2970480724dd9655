package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/core/domain"
)

func runRequire(t *testing.T, role string, perm domain.Permission) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxRole, role)
	}

	h := Require(perm)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequire_AllowsPermittedRole(t *testing.T) {
	cases := []struct {
		role string
		perm domain.Permission
	}{
		{"admin", domain.PermManageUsers},
		{"admin", domain.PermDelete},
		{"manager", domain.PermCreate},
		{"user", domain.PermUpdate},
		{"viewer", domain.PermRead},
	}
	for _, tc := range cases {
		if rec := runRequire(t, tc.role, tc.perm); rec.Code != http.StatusOK {
			t.Errorf("%s/%s: expected 200, got %d", tc.role, tc.perm, rec.Code)
		}
	}
}

func TestRequire_DeniesMissingPermission(t *testing.T) {
	cases := []struct {
		role string
		perm domain.Permission
	}{
		{"viewer", domain.PermCreate},
		{"viewer", domain.PermUpdate},
		{"viewer", domain.PermDelete},
		{"user", domain.PermDelete},
		{"user", domain.PermManageUsers},
		{"manager", domain.PermManageUsers},
	}
	for _, tc := range cases {
		if rec := runRequire(t, tc.role, tc.perm); rec.Code != http.StatusForbidden {
			t.Errorf("%s/%s: expected 403, got %d", tc.role, tc.perm, rec.Code)
		}
	}
}

func TestRequire_FailsClosed(t *testing.T) {
	for _, role := range []string{"", "superadmin", "ADMIN"} {
		if rec := runRequire(t, role, domain.PermRead); rec.Code != http.StatusForbidden {
			t.Errorf("role %q: expected 403, got %d", role, rec.Code)
		}
	}
}
