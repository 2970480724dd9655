package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

// AuthService implements registration, login, and logout.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionDirectory
	tokens   *TokenService
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionDirectory, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens, log: log}
}

// Register creates a user with a bcrypt-hashed password. Field shape
// (name length, email format, password strength, role enum) is checked
// at the handler boundary; the duplicate-email check happens here.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies the password, issues a token, and opens a session
// record that lives exactly as long as the token. The session record is
// what makes logout-before-expiry possible.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	// An unknown email and a wrong password are the same failure to the
	// caller, so login never reveals which emails are registered.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Put(ctx, claims.TokenID, user.ID, s.tokens.TTL()); err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("login")
	return token, user, nil
}

// Logout revokes the session behind the given token id. The token's
// signature stays valid but the authenticator rejects it once the
// session record is gone.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if err := s.sessions.Revoke(ctx, tokenID); err != nil {
		return err
	}
	s.log.Info().Str("token_id", tokenID).Msg("logout")
	return nil
}
