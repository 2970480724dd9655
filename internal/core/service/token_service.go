package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bizcore/erp-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256-signed bearer tokens.
//
// A token stays valid for its full lifetime once issued, even if the
// user's role changes or the user is removed in the interim; revocation
// before expiry is handled outside the token layer by the session
// directory.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token carrying the user's id, role, a fresh
// token id, issued-at, and an expiry one TTL out.
func (s *TokenService) Issue(userID int64, role domain.Role) (string, *domain.Claims, error) {
	now := s.now().UTC()
	claims := &domain.Claims{
		UserID:   userID,
		Role:     role,
		TokenID:  newTokenID(),
		IssuedAt: now,
		Expiry:   now.Add(s.ttl),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", userID),
		"role": string(role),
		"jti":  claims.TokenID,
		"iat":  now.Unix(),
		"exp":  claims.Expiry.Unix(),
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Verify re-checks the signature and expiry and returns the decoded
// claims. Any malformed, tampered, or expired token yields
// domain.ErrInvalidToken; Verify never panics on bad input.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := mc["sub"].(string)
	var userID int64
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil || userID <= 0 {
		return nil, domain.ErrInvalidToken
	}

	role, _ := mc["role"].(string)
	jti, _ := mc["jti"].(string)
	if role == "" || jti == "" {
		return nil, domain.ErrInvalidToken
	}

	claims := &domain.Claims{
		UserID:  userID,
		Role:    domain.Role(role),
		TokenID: jti,
	}
	if iat, ok := mc["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}
	if exp, ok := mc["exp"].(float64); ok {
		claims.Expiry = time.Unix(int64(exp), 0).UTC()
	}
	return claims, nil
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
