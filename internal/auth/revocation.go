package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "auth:revoked:"

// RevocationList tracks revoked token ids until their natural expiry.
// Logout would otherwise be purely client-side with a 24-hour exposure
// window; entries carry a TTL equal to the token's remaining validity so
// the list never outgrows the set of live tokens.
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList builds a denylist over the shared Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke marks a token id as revoked until expiresAt.
func (rl *RevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if rl == nil || rl.client == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return rl.client.Set(ctx, denylistPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token id has been revoked. Redis outages
// fail open; the token still expires on its own schedule.
func (rl *RevocationList) IsRevoked(ctx context.Context, tokenID string) bool {
	if rl == nil || rl.client == nil || tokenID == "" {
		return false
	}
	exists, err := rl.client.Exists(ctx, denylistPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return exists > 0
}
