package server

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := newJWTManager("test-secret", time.Hour)
	if manager == nil {
		t.Fatal("expected manager with a secret")
	}

	token, err := manager.Generate("user-42", time.Now().UTC())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	userID, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("expected user-42, got %q", userID)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	manager := newJWTManager("secret-a", time.Hour)
	other := newJWTManager("secret-b", time.Hour)

	token, err := manager.Generate("user-42", time.Now().UTC())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	manager := newJWTManager("test-secret", time.Minute)

	token, err := manager.Generate("user-42", time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := manager.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestJWTManagerDisabledWithoutSecret(t *testing.T) {
	if manager := newJWTManager("   ", time.Hour); manager != nil {
		t.Fatal("expected nil manager without a secret")
	}
}
