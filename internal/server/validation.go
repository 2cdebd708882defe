package server

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const maxNameLength = 64

func validateName(name string) (string, error) {
	trimmed := strings.Join(strings.Fields(strings.TrimSpace(name)), " ")
	if trimmed == "" {
		return "", errors.New("name is required")
	}
	if len(trimmed) > maxNameLength {
		return "", fmt.Errorf("name must be %d characters or fewer", maxNameLength)
	}
	if !isSafeText(trimmed) {
		return "", errors.New("name contains unsupported characters")
	}
	return trimmed, nil
}

// validateGuess deliberately does not trim or normalize: the comparison
// against the answer is a literal case-insensitive match, so the submitted
// text must survive exactly as typed.
func validateGuess(text string, maxLen int) (string, error) {
	if text == "" {
		return "", errors.New("guess is required")
	}
	if len(text) > maxLen {
		return "", fmt.Errorf("guess must be %d characters or fewer", maxLen)
	}
	if !isSafeText(text) {
		return "", errors.New("guess contains unsupported characters")
	}
	return text, nil
}

func validateTheme(text string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > maxLen {
		return "", fmt.Errorf("theme must be %d characters or fewer", maxLen)
	}
	if trimmed != "" && !isSafeText(trimmed) {
		return "", errors.New("theme contains unsupported characters")
	}
	return trimmed, nil
}

func isSafeText(text string) bool {
	for _, r := range text {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
