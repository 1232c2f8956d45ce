package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pythonccino/goccino/internal/auth/entity"
	"github.com/pythonccino/goccino/internal/pkg/clock"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
	"github.com/pythonccino/goccino/internal/pkg/goroutine"
	"github.com/pythonccino/goccino/internal/pkg/hash"
	"github.com/pythonccino/goccino/internal/pkg/mail"
	"github.com/pythonccino/goccino/internal/pkg/secretbox"
)

// emailChallenger mails a short-lived one-time code and verifies it against
// the stored digest. A code is consumed on success and cannot be replayed.
type emailChallenger struct {
	repoDB    repoDB
	hmac      hash.Hash
	emailCode secretbox.CodeGenerator
	clock     clock.Clocker
	cfg       config.Config
	mail      mail.Mail
	goroutine *goroutine.Manager
}

func (c *emailChallenger) Challenge(ctx context.Context, username string) (*ChallengeMaterial, error) {
	code, err := c.emailCode.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate email code", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	digest, err := c.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash email code", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	ttl := c.cfg.GetMinute("auth.email_code.ttl_minutes")
	if err := c.repoDB.SaveEmailChallenge(ctx, entity.EmailChallenge{
		Username:   username,
		CodeDigest: string(digest),
		ExpiresAt:  c.clock.Now().Add(ttl),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo save email challenge", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	staffEmail := c.cfg.GetString("auth.email_code.staff_email")
	// Detached so the send is not aborted when the request context is
	// canceled after the handler returns. Correlation values carry over.
	c.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return c.mail.Send(ctx, mail.Message{
			To:      []string{staffEmail},
			Subject: "Your Pythonccino verification code",
			TextBody: "Your verification code is " + code + ".\n" +
				"It expires in " + ttl.String() + ".",
			HTMLBody: "<p>Your verification code is <strong>" + code + "</strong>.</p>" +
				"<p>It expires in " + ttl.String() + ".</p>",
		})
	})

	return &ChallengeMaterial{
		SecondFactor: entity.SecondFactorEmailCode,
		Message:      "A verification code has been sent to your email",
	}, nil
}

func (c *emailChallenger) Check(ctx context.Context, username, code string) error {
	challenge, err := c.repoDB.GetEmailChallenge(ctx, username)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "email challenge not found", "username", username)
		return goerror.NewBusiness("no pending verification code", goerror.CodeBadRequest)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get email challenge", "username", username, "error", err)
		return goerror.NewServer(err)
	}

	if c.clock.Now().After(challenge.ExpiresAt) {
		if err := c.repoDB.DeleteEmailChallenge(ctx, username); err != nil {
			slog.ErrorContext(ctx, "failed to repo delete expired email challenge", "username", username, "error", err)
		}
		slog.WarnContext(ctx, "email challenge expired", "username", username)
		return goerror.NewBusiness("invalid or expired code", goerror.CodeUnauthorized)
	}

	if !isValidOTPCode(code) || !c.hmac.Verify(challenge.CodeDigest, code) {
		slog.WarnContext(ctx, "email code not match", "username", username)
		return goerror.NewBusiness("invalid or expired code", goerror.CodeUnauthorized)
	}

	if err := c.repoDB.DeleteEmailChallenge(ctx, username); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete email challenge", "username", username, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
