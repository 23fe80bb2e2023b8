package token

import (
	"errors"
	"testing"
	"time"

	"github.com/eventback/auth-server/internal/core/domain"
)

func TestJWT_IssueVerify(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	signed, err := j.Issue(domain.TokenClaims{
		Username: "alice",
		Subject:  "user-1",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := j.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Username != "alice" || claims.Subject != "user-1" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt.IsZero() {
		t.Fatalf("expected embedded expiration")
	}
}

func TestJWT_Expired(t *testing.T) {
	now := time.Now()
	j := NewJWT("secret", time.Minute).WithClock(func() time.Time { return now })

	signed, err := j.Issue(domain.TokenClaims{Username: "bob", Subject: "user-2", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Advance the clock past the TTL; only verification sees the new time.
	j.WithClock(func() time.Time { return now.Add(2 * time.Minute) })

	if _, err := j.Verify(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWT_BadSignature(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	other := NewJWT("other-secret", time.Hour)

	signed, err := other.Issue(domain.TokenClaims{Username: "carol", Subject: "user-3", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := j.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	if _, err := j.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := j.Verify(""); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for empty token, got %v", err)
	}
}
