package hash_test

import (
	"bytes"
	"testing"

	"github.com/pythonccino/goccino/internal/pkg/hash"
)

func TestHMACSHA256Deterministic(t *testing.T) {
	// Arrange
	h := hash.NewHMACSHA256("secret-key")

	// Act
	first, err1 := h.Hash("123456")
	second, err2 := h.Hash("123456")

	// Assert
	if err1 != nil || err2 != nil {
		t.Fatalf("hash failed: %v %v", err1, err2)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical digests for identical input")
	}
	if !h.Verify(string(first), "123456") {
		t.Fatalf("expected verification to succeed")
	}
	if h.Verify(string(first), "654321") {
		t.Fatalf("expected verification to fail for a different code")
	}
}

func TestHMACSHA256KeyMatters(t *testing.T) {
	// Arrange
	digest, err := hash.NewHMACSHA256("key-one").Hash("123456")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	// Act
	ok := hash.NewHMACSHA256("key-two").Verify(string(digest), "123456")

	// Assert
	if ok {
		t.Fatalf("expected verification to fail under a different key")
	}
}
