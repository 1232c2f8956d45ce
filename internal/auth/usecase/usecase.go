package usecase

import (
	"context"

	"github.com/pythonccino/goccino/internal/auth/entity"
	"github.com/pythonccino/goccino/internal/pkg/clock"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/goroutine"
	"github.com/pythonccino/goccino/internal/pkg/hash"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/jwt"
	"github.com/pythonccino/goccino/internal/pkg/mail"
	"github.com/pythonccino/goccino/internal/pkg/otp"
	"github.com/pythonccino/goccino/internal/pkg/secretbox"
	"github.com/pythonccino/goccino/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// dummyPasswordHash is a valid bcrypt hash of a throwaway value. It is
// compared against when the username does not match so that a wrong
// username and a wrong password take the same time and return the same
// error.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

type repoDB interface {
	SaveTOTPEnrollment(ctx context.Context, e entity.TOTPEnrollment) error
	GetTOTPEnrollment(ctx context.Context, username string) (*entity.TOTPEnrollment, error)

	SaveEmailChallenge(ctx context.Context, c entity.EmailChallenge) error
	GetEmailChallenge(ctx context.Context, username string) (*entity.EmailChallenge, error)
	DeleteEmailChallenge(ctx context.Context, username string) error
}

type Usecase struct {
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation

	totpCh  Challenger
	emailCh Challenger
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	HMAC       hash.Hash
	Encryptor  secretbox.Encryptor
	EmailCode  secretbox.CodeGenerator
	Totp       otp.OTP
	Clock      clock.Clocker
	JWT        jwt.JWT
	Mail       mail.Mail
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
		totpCh: &totpChallenger{
			repoDB:    dep.RepoDB,
			encryptor: dep.Encryptor,
			totp:      dep.Totp,
			clock:     dep.Clock,
		},
		emailCh: &emailChallenger{
			repoDB:    dep.RepoDB,
			hmac:      dep.HMAC,
			emailCode: dep.EmailCode,
			clock:     dep.Clock,
			cfg:       dep.Config,
			mail:      dep.Mail,
			goroutine: dep.Goroutine,
		},
	}
}

// TokenOutput is the session token issued after second-factor verification.
type TokenOutput struct {
	AccessToken string
	ExpiresIn   int64
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

func (s *Usecase) issueToken(username string) (*TokenOutput, error) {
	token, err := s.jwt.Generate(username)
	if err != nil {
		return nil, err
	}

	return &TokenOutput{
		AccessToken: token,
		ExpiresIn:   int64(s.jwt.TTL().Seconds()),
	}, nil
}
