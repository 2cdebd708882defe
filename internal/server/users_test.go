package server

import "testing"

func TestEnsureUserClaimsExistingName(t *testing.T) {
	registry := newUserRegistry(nil)

	first, err := registry.Ensure("Ada")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	again, err := registry.Ensure("ada")
	if err != nil {
		t.Fatalf("failed to claim user: %v", err)
	}
	if first.ID != again.ID {
		t.Fatalf("same name should resolve to one user: %s vs %s", first.ID, again.ID)
	}
	if again.Name != "Ada" {
		t.Fatalf("original casing should stick, got %q", again.Name)
	}
}

func TestEnsureUserRejectsBlankName(t *testing.T) {
	registry := newUserRegistry(nil)
	if _, err := registry.Ensure("   "); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestNameLookup(t *testing.T) {
	registry := newUserRegistry(nil)
	user, err := registry.Ensure("Ada")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if got := registry.Name(user.ID); got != "Ada" {
		t.Fatalf("expected Ada, got %q", got)
	}
	if got := registry.Name("missing"); got != "" {
		t.Fatalf("expected empty name for unknown id, got %q", got)
	}
	if got := registry.Name(""); got != "" {
		t.Fatalf("expected empty name for empty id, got %q", got)
	}
}
