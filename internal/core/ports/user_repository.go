package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// UserRepository persists registered users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
