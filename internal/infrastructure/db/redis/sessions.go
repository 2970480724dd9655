package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionDirectory maps live token ids to user ids.
// Key format: session:<token_id> → user id, TTL = token lifetime.
//
// A bearer token is honoured only while its key exists: logout deletes
// the key (revocation before expiry) and redis TTL drops the rest, so
// expired sessions need no purge pass.
type SessionDirectory struct {
	client *redis.Client
}

// NewSessionDirectory creates a SessionDirectory wrapping the given
// Redis client.
func NewSessionDirectory(client *redis.Client) *SessionDirectory {
	return &SessionDirectory{client: client}
}

// Put records a live session for tokenID, expiring after ttl.
func (d *SessionDirectory) Put(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(tokenID), strconv.FormatInt(userID, 10), ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

// Exists reports whether the session behind tokenID is still live.
func (d *SessionDirectory) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

// Revoke removes the session, invalidating the token before its signed
// expiry. Revoking an already-gone session is not an error.
func (d *SessionDirectory) Revoke(ctx context.Context, tokenID string) error {
	if err := d.client.Del(ctx, d.key(tokenID)).Err(); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	return nil
}

func (d *SessionDirectory) key(tokenID string) string {
	return "session:" + tokenID
}
