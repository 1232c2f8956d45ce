package auth

import (
	"github.com/pythonccino/goccino/internal/auth/inbound"
	"github.com/pythonccino/goccino/internal/auth/outbound/db"
	"github.com/pythonccino/goccino/internal/auth/usecase"
	"github.com/pythonccino/goccino/internal/pkg/clock"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/goroutine"
	"github.com/pythonccino/goccino/internal/pkg/hash"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/jwt"
	"github.com/pythonccino/goccino/internal/pkg/mail"
	"github.com/pythonccino/goccino/internal/pkg/otp"
	"github.com/pythonccino/goccino/internal/pkg/router"
	"github.com/pythonccino/goccino/internal/pkg/secretbox"
	"github.com/pythonccino/goccino/internal/pkg/validator"
	"go.etcd.io/bbolt"
)

type Dependency struct {
	DB         *bbolt.DB                  `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Encryptor  secretbox.Encryptor        `validate:"required"`
	EmailCode  secretbox.CodeGenerator    `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Totp       otp.OTP                    `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewBolt(dep.DB, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAuth,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		HMAC:       dep.HMAC,
		Encryptor:  dep.Encryptor,
		EmailCode:  dep.EmailCode,
		Totp:       dep.Totp,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Mail:       dep.Mail,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
