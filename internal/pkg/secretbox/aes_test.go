package secretbox_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pythonccino/goccino/internal/pkg/secretbox"
)

func newEncryptor() *secretbox.AESGCMEncryptor {
	key := bytes.Repeat([]byte{0x42}, 32)
	return secretbox.NewAESGCMEncryptor(secretbox.StaticKeyProvider{KeyBytes: key})
}

func TestAESGCMRoundTrip(t *testing.T) {
	// Arrange
	enc := newEncryptor()
	scope := secretbox.Scope{Username: "staff", Purpose: secretbox.PurposeOTPSeed}

	// Act
	ciphertext, err := enc.Encrypt([]byte("JBSWY3DPEHPK3PXP"), scope)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	plaintext, err := enc.Decrypt(ciphertext, scope)

	// Assert
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if string(plaintext) != "JBSWY3DPEHPK3PXP" {
		t.Fatalf("expected round trip to preserve the seed, got %q", plaintext)
	}
}

func TestAESGCMWrongScope(t *testing.T) {
	// Arrange
	enc := newEncryptor()
	ciphertext, err := enc.Encrypt([]byte("JBSWY3DPEHPK3PXP"), secretbox.Scope{
		Username: "staff",
		Purpose:  secretbox.PurposeOTPSeed,
	})
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	// Act: the record is replayed under a different username.
	_, err = enc.Decrypt(ciphertext, secretbox.Scope{
		Username: "intruder",
		Purpose:  secretbox.PurposeOTPSeed,
	})

	// Assert
	if !errors.Is(err, secretbox.ErrDecryptFailed) {
		t.Fatalf("expected ErrDecryptFailed, got %v", err)
	}
}

func TestAESGCMTamperedCiphertext(t *testing.T) {
	// Arrange
	enc := newEncryptor()
	scope := secretbox.Scope{Username: "staff", Purpose: secretbox.PurposeOTPSeed}

	ciphertext, err := enc.Encrypt([]byte("JBSWY3DPEHPK3PXP"), scope)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	ciphertext[len(ciphertext)-1] ^= 0x01

	// Act
	_, err = enc.Decrypt(ciphertext, scope)

	// Assert
	if !errors.Is(err, secretbox.ErrDecryptFailed) {
		t.Fatalf("expected ErrDecryptFailed, got %v", err)
	}
}
