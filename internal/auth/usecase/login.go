package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/pythonccino/goccino/internal/auth/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	SecondFactor entity.SecondFactor
	TOTPURI      string
	Message      string
}

// Login verifies the staff credentials and opens a second-factor challenge.
// It never issues a token on its own; the verify endpoints do that.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	username := strings.TrimSpace(in.Username)
	if err := s.verifyCredentials(ctx, username, in.Password); err != nil {
		return nil, err
	}

	factor := entity.SecondFactorFromString(s.cfg.GetString("auth.second_factor"))
	challenger, err := s.challengerFor(factor)
	if err != nil {
		slog.ErrorContext(ctx, "second factor is not configured", "value", s.cfg.GetString("auth.second_factor"))
		return nil, err
	}

	material, err := challenger.Challenge(ctx, username)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		SecondFactor: material.SecondFactor,
		TOTPURI:      material.TOTPURI,
		Message:      material.Message,
	}, nil
}

func (s *Usecase) challengerFor(factor entity.SecondFactor) (Challenger, error) {
	switch factor {
	case entity.SecondFactorTOTP:
		return s.totpCh, nil
	case entity.SecondFactorEmailCode:
		return s.emailCh, nil
	default:
		return nil, goerror.NewServer(errors.New("second factor is not configured"))
	}
}

// verifyCredentials rejects a wrong username and a wrong password with the
// same error and comparable timing. The dummy compare keeps the bcrypt cost
// on the unknown-username path.
func (s *Usecase) verifyCredentials(ctx context.Context, username, password string) error {
	staffUsername := s.cfg.GetString("auth.staff_username")
	staffHash := s.cfg.GetString("auth.staff_password_hash")

	if subtle.ConstantTimeCompare([]byte(username), []byte(staffUsername)) != 1 {
		s.bcrypt.Verify(dummyPasswordHash, password)
		slog.WarnContext(ctx, "login attempt with unknown username", "username", username)
		return goerror.NewBusiness("invalid username or password", goerror.CodeBadRequest)
	}

	if !s.bcrypt.Verify(staffHash, password) {
		slog.WarnContext(ctx, "login attempt with wrong password", "username", username)
		return goerror.NewBusiness("invalid username or password", goerror.CodeBadRequest)
	}

	return nil
}
