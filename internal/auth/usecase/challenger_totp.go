package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pythonccino/goccino/internal/auth/entity"
	"github.com/pythonccino/goccino/internal/pkg/clock"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
	"github.com/pythonccino/goccino/internal/pkg/otp"
	"github.com/pythonccino/goccino/internal/pkg/secretbox"
)

// totpChallenger treats login as enrollment on demand: every successful
// password check mints a fresh seed and overwrites the stored one, so a lost
// authenticator is recovered by logging in again. The seed only exists
// encrypted at rest.
type totpChallenger struct {
	repoDB    repoDB
	encryptor secretbox.Encryptor
	totp      otp.OTP
	clock     clock.Clocker
}

func (c *totpChallenger) Challenge(ctx context.Context, username string) (*ChallengeMaterial, error) {
	secret, uri, err := c.totp.Generate(username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate totp secret", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	encryptedSecret, err := c.encryptor.Encrypt([]byte(secret), secretbox.Scope{
		Username: username,
		Purpose:  secretbox.PurposeOTPSeed,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encrypt totp secret", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := c.repoDB.SaveTOTPEnrollment(ctx, entity.TOTPEnrollment{
		Username:  username,
		Secret:    encryptedSecret,
		CreatedAt: c.clock.Now(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo save totp enrollment", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ChallengeMaterial{
		SecondFactor: entity.SecondFactorTOTP,
		TOTPURI:      uri,
		Message:      "Scan the provisioning URI with your authenticator app, then verify",
	}, nil
}

func (c *totpChallenger) Check(ctx context.Context, username, code string) error {
	if !isValidOTPCode(code) {
		slog.WarnContext(ctx, "totp code has invalid shape", "username", username)
		return goerror.NewBusiness("invalid authenticator code", goerror.CodeUnauthorized)
	}

	enrollment, err := c.repoDB.GetTOTPEnrollment(ctx, username)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "totp enrollment not found", "username", username)
		return goerror.NewBusiness("totp is not enrolled for this account", goerror.CodeBadRequest)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get totp enrollment", "username", username, "error", err)
		return goerror.NewServer(err)
	}

	secretBytes, err := c.encryptor.Decrypt(enrollment.Secret, secretbox.Scope{
		Username: username,
		Purpose:  secretbox.PurposeOTPSeed,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to decrypt totp secret", "username", username, "error", err)
		return goerror.NewServer(err)
	}

	if !c.totp.Validate(code, string(secretBytes), c.clock.Now()) {
		slog.WarnContext(ctx, "invalid totp code", "username", username)
		return goerror.NewBusiness("invalid authenticator code", goerror.CodeUnauthorized)
	}

	return nil
}
