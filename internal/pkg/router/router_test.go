package router_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/jwt"
	"github.com/pythonccino/goccino/internal/pkg/router"
	"github.com/pythonccino/goccino/internal/pkg/uid"
)

type fakeJWT struct{}

func (fakeJWT) Generate(username string) (string, error) { return "good", nil }

func (fakeJWT) Verify(tokenStr string) (jwt.Claims, error) {
	if tokenStr != "good" {
		return jwt.Claims{}, errors.New("bad token")
	}
	return jwt.Claims{
		RegisteredClaims: libJWT.RegisteredClaims{Subject: "staff"},
		Scope:            jwt.ScopeAccess,
	}, nil
}

func (fakeJWT) TTL() time.Duration { return 30 * time.Minute }

func newRouter(t *testing.T) *router.Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: goccino\n"))
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	ro := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        fakeJWT{},
		Instrument: instrument.NewNoop(),
	})

	ro.GET("/api/v1/menu", func(r *router.Request) (any, error) {
		return map[string]string{"status": "public"}, nil
	})
	ro.GET("/api/v1/auth/staff", func(r *router.Request) (any, error) {
		clm := jwt.GetAuth(r.Context())
		if clm == nil {
			return nil, errors.New("claims missing from context")
		}
		return map[string]string{"username": clm.Username()}, nil
	})

	return ro
}

func TestPublicEndpointNeedsNoToken(t *testing.T) {
	// Arrange
	ro := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	rec := httptest.NewRecorder()

	// Act
	ro.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProtectedEndpointWithoutToken(t *testing.T) {
	// Arrange
	ro := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/staff", nil)
	rec := httptest.NewRecorder()

	// Act
	ro.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authentication required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProtectedEndpointWithBearerToken(t *testing.T) {
	// Arrange
	ro := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/staff", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	// Act
	ro.ServeHTTP(rec, req)

	// Assert: the claims reach the handler through the context.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "staff") {
		t.Fatalf("expected the subject in the body: %s", rec.Body.String())
	}
}

func TestProtectedEndpointWithQueryToken(t *testing.T) {
	// Arrange
	ro := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/staff?token=good", nil)
	rec := httptest.NewRecorder()

	// Act
	ro.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProtectedEndpointWithBadToken(t *testing.T) {
	// Arrange
	ro := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/staff", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()

	// Act
	ro.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid or expired token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUnknownEndpoint(t *testing.T) {
	// Arrange
	ro := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()

	// Act
	ro.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
