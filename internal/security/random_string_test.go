package security

import (
	"strings"
	"testing"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "abc123"
	value, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("expected value, got %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected length 32, got %d", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("expected only alphabet characters, got %q", char)
		}
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	t.Parallel()

	value, err := RandomString(0, "abc")
	if err != nil || value != "" {
		t.Fatalf("expected empty string, got %q (%v)", value, err)
	}
}

func TestRandomStringRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatalf("expected error for negative length")
	}
	if _, err := RandomString(8, ""); err == nil {
		t.Fatalf("expected error for empty alphabet")
	}
}
