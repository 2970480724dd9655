package ports

import (
	"context"
	"time"
)

// SessionDirectory maps live token ids to user ids. A token is accepted
// only while its entry exists; deleting the entry revokes the token
// before its signed expiry. Entries expire on their own at the token's
// expiry, so no separate purge pass is needed.
type SessionDirectory interface {
	Put(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string) error
}
