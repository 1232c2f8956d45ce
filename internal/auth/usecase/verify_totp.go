package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

type VerifyTOTPInput struct {
	Username string `validate:"required"`
	Code     string `validate:"required"`
}

// VerifyTOTP checks an authenticator code against the stored enrollment and
// issues a session token when it matches.
func (s *Usecase) VerifyTOTP(ctx context.Context, in VerifyTOTPInput) (*TokenOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyTOTP")
	defer span.End()

	in.Code = strings.TrimSpace(in.Code)
	username := strings.TrimSpace(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.totpCh.Check(ctx, username, in.Code); err != nil {
		return nil, err
	}

	out, err := s.issueToken(username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}
