package server

import (
	"strings"
	"testing"
)

func TestValidateNameNormalizes(t *testing.T) {
	name, err := validateName("  Ada   Lovelace ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Ada Lovelace" {
		t.Fatalf("expected normalized name, got %q", name)
	}
	if _, err := validateName("   "); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestValidateGuessPreservesWhitespace(t *testing.T) {
	guess, err := validateGuess(" pikachu ", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if guess != " pikachu " {
		t.Fatalf("guess must not be trimmed, got %q", guess)
	}
	if _, err := validateGuess("", 60); err == nil {
		t.Fatal("expected error for empty guess")
	}
	if _, err := validateGuess(strings.Repeat("a", 61), 60); err == nil {
		t.Fatal("expected error for oversized guess")
	}
	if _, err := validateGuess("tiger\x00", 60); err == nil {
		t.Fatal("expected error for control characters")
	}
}

func TestValidateTheme(t *testing.T) {
	theme, err := validateTheme("  Animals  ", 140)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme != "Animals" {
		t.Fatalf("expected trimmed theme, got %q", theme)
	}
	if theme, err := validateTheme("", 140); err != nil || theme != "" {
		t.Fatalf("empty theme is allowed, got %q err=%v", theme, err)
	}
	if _, err := validateTheme(strings.Repeat("x", 141), 140); err == nil {
		t.Fatal("expected error for oversized theme")
	}
}
