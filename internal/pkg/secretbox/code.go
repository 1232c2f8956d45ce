package secretbox

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// CodeGenerator defines an interface for generating one-time login codes.
type CodeGenerator interface {
	// Generate returns a fresh code or an error if the random source fails.
	Generate() (string, error)
}

// digits is the character set for emailed login codes. Numeric only so the
// code survives being read over the phone or typed from a small screen.
const digits = "0123456789"

// EmailCode generates cryptographically secure 6-digit login codes for the
// emailed second factor.
type EmailCode struct {
	length int
}

// NewEmailCode returns an EmailCode generator producing 6-digit codes.
func NewEmailCode() *EmailCode {
	return &EmailCode{length: 6}
}

// Generate produces a single random code using crypto/rand.
func (ec *EmailCode) Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(ec.length)

	for i := 0; i < ec.length; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(digits[idx.Int64()])
	}

	return sb.String(), nil
}
