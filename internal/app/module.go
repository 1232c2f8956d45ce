package app

import (
	"log/slog"
	"os"

	"github.com/pythonccino/goccino/internal/auth"
	"github.com/pythonccino/goccino/internal/catalog"
	"github.com/pythonccino/goccino/internal/order"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(auth.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
			Router:     a.router,
			Clock:      a.clock,
			Bcrypt:     a.bcrypt,
			HMAC:       a.hmac,
			Encryptor:  a.encryptor,
			EmailCode:  a.emailCode,
			Totp:       a.totp,
			JWT:        a.jwt,
			DB:         a.boltDB,
			Mail:       a.mail,
			Goroutine:  a.goroutine,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.catalog.enabled") {
		if err := catalog.New(catalog.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
			Router:     a.router,
		}); err != nil {
			slog.Error("failed to init module catalog", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.order.enabled") {
		if err := order.New(order.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
			Router:     a.router,
			Clock:      a.clock,
			UUID:       a.uuid,
			UID:        a.uid,
			Mail:       a.mail,
			Goroutine:  a.goroutine,
		}); err != nil {
			slog.Error("failed to init module order", "error", err)
			os.Exit(1)
		}
	}
}
