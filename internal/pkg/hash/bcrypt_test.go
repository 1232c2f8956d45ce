package hash_test

import (
	"testing"

	"github.com/pythonccino/goccino/internal/pkg/hash"
)

func TestBcryptRoundTrip(t *testing.T) {
	// Arrange
	h := hash.NewBcrypt(4, "pepper-a")

	// Act
	hashed, err := h.Hash("hunter2hunter2")

	// Assert
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !h.Verify(string(hashed), "hunter2hunter2") {
		t.Fatalf("expected verification to succeed for the original password")
	}
	if h.Verify(string(hashed), "wrong-password") {
		t.Fatalf("expected verification to fail for a wrong password")
	}
}

func TestBcryptPepperMismatch(t *testing.T) {
	// Arrange
	hashed, err := hash.NewBcrypt(4, "pepper-a").Hash("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	// Act
	ok := hash.NewBcrypt(4, "pepper-b").Verify(string(hashed), "hunter2hunter2")

	// Assert
	if ok {
		t.Fatalf("expected verification to fail when the pepper differs")
	}
}
