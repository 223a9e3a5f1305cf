package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenPairRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", 15*time.Minute, 24*time.Hour)

	pair, err := svc.IssuePair(42)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	claims, err := svc.VerifyAccess(pair.Access)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.ID == "" {
		t.Error("token issued without a jti")
	}
}

func TestRefreshTokenCannotActAsAccess(t *testing.T) {
	svc := NewTokenService("secret", 15*time.Minute, 24*time.Hour)
	pair, err := svc.IssuePair(7)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	if _, err := svc.VerifyAccess(pair.Refresh); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("VerifyAccess(refresh) err = %v, want ErrWrongKind", err)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc := NewTokenService("secret", 15*time.Minute, 24*time.Hour)
	pair, err := svc.IssuePair(7)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	fresh, err := svc.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, err := svc.VerifyAccess(fresh.Access)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}

	// An access token is never a valid refresh token.
	if _, err := svc.Refresh(pair.Access); err == nil {
		t.Error("Refresh accepted an access token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := &tokenService{
		secret:     []byte("secret"),
		accessTTL:  15 * time.Minute,
		refreshTTL: 24 * time.Hour,
		now:        time.Now,
	}
	pair, err := svc.IssuePair(3)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	// Jump past the access TTL.
	svc.now = func() time.Time { return time.Now().Add(16 * time.Minute) }
	if _, err := svc.VerifyAccess(pair.Access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token err = %v, want ErrInvalidToken", err)
	}
	// The refresh token outlives the access token.
	if _, err := svc.Refresh(pair.Refresh); err != nil {
		t.Errorf("Refresh within its TTL failed: %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := NewTokenService("secret", 15*time.Minute, 24*time.Hour)
	other := NewTokenService("different-secret", 15*time.Minute, 24*time.Hour)

	pair, err := other.IssuePair(9)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if _, err := svc.VerifyAccess(pair.Access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign-key token err = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.VerifyAccess("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token err = %v, want ErrInvalidToken", err)
	}
}
