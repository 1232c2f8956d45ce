package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	libOTP "github.com/pquerna/otp"
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
	"github.com/rs/cors"
	"go.etcd.io/bbolt"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))
	a.hmac = hash.NewHMACSHA256(a.config.GetString("hash.hmac.secret"))

	pepper := a.config.GetString("hash.bcrypt.pepper")
	if pepper == "" {
		slog.Error("failed to init bcrypt, pepper must be configured")
		os.Exit(1)
	}
	a.bcrypt = hash.NewBcrypt(a.config.GetInt("hash.bcrypt.cost"), pepper)

	if a.config.GetString("auth.staff_username") == "" || a.config.GetString("auth.staff_password_hash") == "" {
		slog.Error("failed to init credentials, staff username and password hash must be configured")
		os.Exit(1)
	}

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator

	snow, err := uid.NewSnowflake(int64(a.config.GetInt("app.node_id")))
	if err != nil {
		slog.Error("failed to init uid number snowflake", "error", err)
		os.Exit(1)
	}
	a.uid = snow

	a.totp = otp.NewTOTP(
		a.config.GetString("auth.totp.issuer"),
		uint(a.config.GetInt("auth.totp.period")),
		uint(a.config.GetInt("auth.totp.skew")),
		libOTP.DigitsSix,
	)

	rawKey := a.config.GetBinary("auth.secret_store_key")
	if len(rawKey) != 32 {
		slog.Error("failed to init secretbox, key must be 32 base64-encoded bytes (AES-256)")
		os.Exit(1)
	}
	a.encryptor = secretbox.NewAESGCMEncryptor(secretbox.StaticKeyProvider{KeyBytes: rawKey})
	a.emailCode = secretbox.NewEmailCode()
}

func (a *App) initJWT() {
	defaultJWT, err := jwt.NewHS256(jwt.Config{
		Secret:     []byte(a.config.GetString("jwt.secret")),
		Issuer:     a.config.GetString("jwt.issuer"),
		TTLMinutes: a.config.GetMinute("jwt.ttl_minutes"),
		Clock:      a.clock,
		UUID:       a.uuid,
	})
	if err != nil {
		slog.Error("failed to init jwt token", "error", err)
		os.Exit(1)
	}
	a.jwt = defaultJWT
}

func (a *App) initDatabase() {
	db, err := bbolt.Open(a.config.GetString("db.path"), 0o600, &bbolt.Options{
		Timeout: 5 * time.Second,
	})
	if err != nil {
		slog.Error("failed to open bolt database", "error", err, "path", a.config.GetString("db.path"))
		os.Exit(1)
	}

	a.boltDB = db
}

func (a *App) initMail() {
	smtp, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     a.config.GetString("mail.host"),
		Port:     a.config.GetInt("mail.port"),
		Username: a.config.GetString("mail.username"),
		Password: a.config.GetString("mail.password"),
		From:     a.config.GetString("mail.from"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = mail.NewRetry(smtp, uint64(a.config.GetInt("mail.retry_attempts")))
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		JWT:        a.jwt,
		Instrument: a.ins,
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Database",
			fn: func(context.Context) error {
				return a.boltDB.Close()
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
