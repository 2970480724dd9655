package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// RegisterInput carries a registration request after shape validation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// AuthService implements registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, tokenID string) error
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Issue(userID int64, role domain.Role) (string, *domain.Claims, error)
	Verify(token string) (*domain.Claims, error)
}
