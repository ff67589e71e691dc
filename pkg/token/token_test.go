package token

import (
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	iss, err := NewIssuer(Config{
		AccessSecret:  "test-access-secret",
		AccessTTL:     15 * time.Minute,
		RefreshSecret: "test-refresh-secret",
		RefreshTTL:    7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}
	return iss
}

// ============================================================================
// NewIssuer Tests
// ============================================================================

func TestNewIssuer_SharedSecret_ReturnsError(t *testing.T) {
	t.Parallel()
	_, err := NewIssuer(Config{
		AccessSecret:  "same",
		AccessTTL:     time.Minute,
		RefreshSecret: "same",
		RefreshTTL:    time.Hour,
	})
	if err == nil {
		t.Error("expected error when access and refresh secrets match")
	}
}

func TestNewIssuer_MissingSecret_ReturnsError(t *testing.T) {
	t.Parallel()
	_, err := NewIssuer(Config{
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	if err == nil {
		t.Error("expected error for empty secrets")
	}
}

func TestNewIssuer_ZeroTTL_ReturnsError(t *testing.T) {
	t.Parallel()
	_, err := NewIssuer(Config{
		AccessSecret:  "a",
		RefreshSecret: "b",
	})
	if err == nil {
		t.Error("expected error for zero TTLs")
	}
}

// ============================================================================
// Sign / Verify Tests
// ============================================================================

func TestSignAccess_VerifyAccess_RoundTrip(t *testing.T) {
	t.Parallel()
	iss := newTestIssuer(t)

	raw, err := iss.SignAccess("user:123", "Ada", "ada@example.com", "ADMIN")
	if err != nil {
		t.Fatalf("SignAccess failed: %v", err)
	}
	if strings.Count(raw, ".") != 2 {
		t.Fatalf("expected compact JWT, got %q", raw)
	}

	claims, err := iss.VerifyAccess(raw)
	if err != nil {
		t.Fatalf("VerifyAccess failed: %v", err)
	}
	if claims.UserID != "user:123" {
		t.Errorf("expected UserID user:123, got %q", claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("expected email ada@example.com, got %q", claims.Email)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %q", claims.Role)
	}
}

func TestVerifyAccess_RefreshToken_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	iss := newTestIssuer(t)

	raw, err := iss.SignRefresh("user:123", "Ada", "ada@example.com", "USER")
	if err != nil {
		t.Fatalf("SignRefresh failed: %v", err)
	}

	if _, err := iss.VerifyAccess(raw); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for refresh token, got %v", err)
	}
}

func TestVerifyRefresh_AccessToken_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	iss := newTestIssuer(t)

	raw, err := iss.SignAccess("user:123", "Ada", "ada@example.com", "USER")
	if err != nil {
		t.Fatalf("SignAccess failed: %v", err)
	}

	if _, err := iss.VerifyRefresh(raw); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestVerifyAccess_Expired_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	iss, err := NewIssuer(Config{
		AccessSecret:  "a-secret",
		AccessTTL:     time.Nanosecond,
		RefreshSecret: "r-secret",
		RefreshTTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}

	raw, err := iss.SignAccess("user:123", "Ada", "ada@example.com", "USER")
	if err != nil {
		t.Fatalf("SignAccess failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := iss.VerifyAccess(raw); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyAccess_TamperedToken_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	iss := newTestIssuer(t)

	raw, err := iss.SignAccess("user:123", "Ada", "ada@example.com", "USER")
	if err != nil {
		t.Fatalf("SignAccess failed: %v", err)
	}
	tampered := raw[:len(raw)-4] + "AAAA"

	if _, err := iss.VerifyAccess(tampered); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerifyAccess_WrongSecret_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	iss := newTestIssuer(t)
	other, err := NewIssuer(Config{
		AccessSecret:  "different-access-secret",
		AccessTTL:     15 * time.Minute,
		RefreshSecret: "different-refresh-secret",
		RefreshTTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}

	raw, err := other.SignAccess("user:123", "Ada", "ada@example.com", "USER")
	if err != nil {
		t.Fatalf("SignAccess failed: %v", err)
	}

	if _, err := iss.VerifyAccess(raw); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyAccess_EmptyToken_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	iss := newTestIssuer(t)

	if _, err := iss.VerifyAccess(""); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for empty token, got %v", err)
	}
}
