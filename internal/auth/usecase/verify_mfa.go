package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

type VerifyMFAInput struct {
	Username string `validate:"required"`
	Code     string `validate:"required"`
}

// VerifyMFA checks a one-time email code against the pending challenge and
// issues a session token when it matches. A code is consumed on success and
// cannot be replayed.
func (s *Usecase) VerifyMFA(ctx context.Context, in VerifyMFAInput) (*TokenOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyMFA")
	defer span.End()

	in.Code = strings.TrimSpace(in.Code)
	username := strings.TrimSpace(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.emailCh.Check(ctx, username, in.Code); err != nil {
		return nil, err
	}

	out, err := s.issueToken(username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}
