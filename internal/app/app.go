package app

import (
	"context"
	"net/http"

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
	"github.com/pythonccino/goccino/internal/pkg/uid"
	"github.com/pythonccino/goccino/internal/pkg/validator"
	"go.etcd.io/bbolt"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	totp      otp.OTP
	jwt       jwt.JWT
	encryptor secretbox.Encryptor
	emailCode secretbox.CodeGenerator

	// resources
	boltDB *bbolt.DB
	mail   mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
