package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRevocationListRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()
	list := NewRevocationList(client)
	ctx := context.Background()

	if list.IsRevoked(ctx, "jti-1") {
		t.Fatalf("fresh token id must not be revoked")
	}
	if err := list.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("revoke error: %v", err)
	}
	if !list.IsRevoked(ctx, "jti-1") {
		t.Fatalf("revoked token id must be reported revoked")
	}

	// Entries lapse with the token's own expiry.
	srv.FastForward(2 * time.Hour)
	if list.IsRevoked(ctx, "jti-1") {
		t.Fatalf("denylist entry must not outlive the token")
	}
}

func TestRevokeExpiredTokenIsNoop(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()
	list := NewRevocationList(client)
	ctx := context.Background()

	if err := list.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("revoke error: %v", err)
	}
	if srv.Exists("auth:revoked:jti-2") {
		t.Fatalf("already-expired tokens need no denylist entry")
	}
}

func TestRevocationFailsOpen(t *testing.T) {
	ctx := context.Background()

	var nilList *RevocationList
	if nilList.IsRevoked(ctx, "jti-1") {
		t.Fatalf("nil list must report not revoked")
	}
	if err := nilList.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("nil list revoke must be a no-op, got %v", err)
	}

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()
	list := NewRevocationList(client)
	srv.Close()
	if list.IsRevoked(ctx, "jti-1") {
		t.Fatalf("redis outage must fail open")
	}
}
