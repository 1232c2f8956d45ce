package secretbox_test

import (
	"testing"

	"github.com/pythonccino/goccino/internal/pkg/secretbox"
)

func TestEmailCodeGenerate(t *testing.T) {
	// Arrange
	gen := secretbox.NewEmailCode()

	for i := 0; i < 20; i++ {
		// Act
		code, err := gen.Generate()

		// Assert
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("expected only digits, got %q", code)
			}
		}
	}
}
