package utils

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	access, refresh, err := GenerateTokens("42")
	if err != nil {
		t.Fatalf("GenerateTokens failed: %v", err)
	}
	if access == refresh {
		t.Error("access and refresh tokens should differ")
	}

	claims, err := ValidateToken(access)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.AccountID != "42" {
		t.Errorf("account id = %q, want %q", claims.AccountID, "42")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	if _, err := ValidateToken("v2.local.not-a-real-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	token, err := GenerateAccessToken("42")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	t.Setenv("SYMMETRIC_KEY", "ffffffffffffffffffffffffffffffff")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token decrypted under a different key")
	}
}
