// Package secretbox encrypts second-factor material before it reaches disk.
//
// TOTP seeds are stored as AES-256-GCM ciphertext bound to the owning
// username and purpose via AAD, so a record copied to another username or
// reused for a different purpose fails to decrypt.
package secretbox

// Encryptor defines the interface for encrypting/decrypting.
type Encryptor interface {
	// Encrypt returns ciphertext for the given plaintext and scope.
	Encrypt(plaintext []byte, scope Scope) (ciphertext []byte, err error)
	// Decrypt returns plaintext for the given ciphertext and scope.
	Decrypt(ciphertext []byte, scope Scope) (plaintext []byte, err error)
}

// KeyProvider provides raw AES keys.
// For AES-256-GCM, keys must be 32 bytes.
type KeyProvider interface {
	// Key returns the raw AES key to use for this scope.
	Key(scope Scope) ([]byte, error)
}

// Purpose identifies the encryption purpose.
type Purpose string

const (
	// PurposeOTPSeed scopes encryption to TOTP seeds.
	PurposeOTPSeed Purpose = "otp_seed"
)

// Scope binds encryption to a specific owner and purpose.
// This is used as AAD (Additional Authenticated Data) in AES-GCM.
type Scope struct {
	// Username is the account the material belongs to.
	Username string
	// Purpose is the encryption purpose.
	Purpose Purpose
}
