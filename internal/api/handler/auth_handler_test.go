package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/api/middleware"
	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

type stubAuthService struct {
	register func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	login    func(ctx context.Context, email, password string) (string, *domain.User, error)
	logout   func(ctx context.Context, tokenID string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.register(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.login(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, tokenID string) error {
	return s.logout(ctx, tokenID)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{
		register: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			return &domain.User{ID: 1, Name: in.Name, Email: in.Email, PasswordHash: "$2a$10$hash", Role: in.Role}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/register",
		`{"name":"Jane Doe","email":"jane@x.com","password":"Abcd1234","role":"manager"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "$2a$10$hash") {
		t.Fatalf("response must not expose the password hash: %s", rec.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				ID    int64  `json:"id"`
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !body.Success || body.Data.User.ID != 1 || body.Data.User.Role != "manager" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	svc := &stubAuthService{
		register: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatal("service must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc)

	for _, pw := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		c, rec := newTestContext(http.MethodPost, "/api/auth/register",
			`{"name":"Jane","email":"jane@x.com","password":"`+pw+`","role":"user"}`)
		if err := h.Register(c); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("password %q: expected 400, got %d", pw, rec.Code)
		}
	}
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(http.MethodPost, "/api/auth/register",
		`{"name":"Jane","email":"jane@x.com","password":"Abcd1234","role":"root"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		register: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/api/auth/register",
		`{"name":"Jane","email":"jane@x.com","password":"Abcd1234","role":"user"}`)

	// Duplicate email surfaces as a domain error for the central error handler.
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_ReturnsToken(t *testing.T) {
	svc := &stubAuthService{
		login: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "jane@x.com" || password != "Abcd1234" {
				t.Fatalf("unexpected credentials: %s / %s", email, password)
			}
			return "signed.jwt.token", &domain.User{ID: 1, Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"jane@x.com","password":"Abcd1234"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "signed.jwt.token") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &stubAuthService{
		login: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"jane@x.com","password":"wrongpass"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var revoked string
	svc := &stubAuthService{
		logout: func(_ context.Context, tokenID string) error {
			revoked = tokenID
			return nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/logout", "")
	c.Set(middleware.CtxTokenID, "tok-9")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "tok-9" {
		t.Fatalf("expected session tok-9 revoked, got %q", revoked)
	}
}

func TestAuthHandler_Logout_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/auth/logout", "")

	err := h.Logout(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
