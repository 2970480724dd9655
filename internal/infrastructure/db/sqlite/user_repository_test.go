package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/bizcore/erp-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *UserRepository, email string) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := repo.Create(context.Background(), &domain.User{
		Name: "Jane Doe", Email: email, PasswordHash: "$2a$10$hash",
		Role: domain.RoleManager, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	created := seedUser(t, repo, "jane@x.com")
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	byEmail, err := repo.FindByEmail(context.Background(), "jane@x.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if byEmail.ID != created.ID || byEmail.Role != domain.RoleManager {
		t.Fatalf("unexpected user: %+v", byEmail)
	}

	byID, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID.Email != "jane@x.com" {
		t.Fatalf("unexpected email: %s", byID.Email)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	seedUser(t, repo, "jane@x.com")

	now := time.Now().UTC()
	_, err := repo.Create(context.Background(), &domain.User{
		Name: "Other Jane", Email: "jane@x.com", PasswordHash: "$2a$10$other",
		Role: domain.RoleUser, CreatedAt: now, UpdatedAt: now,
	})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	if _, err := repo.FindByEmail(context.Background(), "ghost@x.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), 404); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
