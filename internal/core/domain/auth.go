package domain

import (
	"errors"
	"time"
)

var ErrMissingCredential = errors.New("missing authorization credential")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrSessionExpired = errors.New("session expired or revoked")

// Claims is the verified content of a bearer token. It lives only for
// the duration of request handling and is never persisted.
type Claims struct {
	UserID   int64
	Role     Role
	TokenID  string
	IssuedAt time.Time
	Expiry   time.Time
}
