package security

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatal("expected password to verify")
	}
	if CheckPassword(hash, "wrong password") {
		t.Fatal("expected wrong password to fail")
	}
}

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := NewAdminToken("test-secret", "admin-1", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ParseAdminToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.AdminID != "admin-1" {
		t.Fatalf("expected admin id admin-1, got %q", claims.AdminID)
	}
}

func TestAdminTokenWrongSecret(t *testing.T) {
	token, err := NewAdminToken("test-secret", "admin-1", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAdminToken("other-secret", token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestAdminTokenExpired(t *testing.T) {
	token, err := NewAdminToken("test-secret", "admin-1", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAdminToken("test-secret", token); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}

func TestNewAdminTokenEmptySecret(t *testing.T) {
	if _, err := NewAdminToken("", "admin-1", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestParseAdminTokenEmptySecret(t *testing.T) {
	token, err := NewAdminToken("test-secret", "admin-1", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAdminToken("", token); err == nil {
		t.Fatal("expected parse failure with empty secret")
	}
}
