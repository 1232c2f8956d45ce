package usecase

import (
	"context"

	"github.com/pythonccino/goccino/internal/auth/entity"
)

// ChallengeMaterial is what the client needs to answer a challenge.
type ChallengeMaterial struct {
	SecondFactor entity.SecondFactor
	TOTPURI      string
	Message      string
}

// Challenger opens a second-factor challenge for an account and checks the
// answer. Implementations exist for authenticator apps and email codes; the
// one used at login is selected by configuration.
type Challenger interface {
	Challenge(ctx context.Context, username string) (*ChallengeMaterial, error)
	Check(ctx context.Context, username, code string) error
}

func isValidOTPCode(code string) bool {
	if len(code) != 6 { // 6 is length of totp
		return false
	}

	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}

	return true
}
