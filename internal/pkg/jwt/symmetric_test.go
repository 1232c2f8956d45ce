package jwt_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pythonccino/goccino/internal/pkg/clock"
	"github.com/pythonccino/goccino/internal/pkg/jwt"
	"github.com/pythonccino/goccino/internal/pkg/uid"
)

var signingKey = []byte("0123456789abcdef0123456789abcdef")

func fixedClock(t *testing.T, at time.Time) *clock.Fixed {
	t.Helper()
	return &clock.Fixed{At: at}
}

func build(t *testing.T, clk *clock.Fixed) jwt.JWT {
	t.Helper()

	j, err := jwt.NewHS256(jwt.Config{
		Secret:     signingKey,
		Issuer:     "goccino",
		TTLMinutes: 30 * time.Minute,
		Clock:      clk,
		UUID:       uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("new hs256 failed: %v", err)
	}
	return j
}

func TestSymmetricGenerateVerify(t *testing.T) {
	// Arrange
	clk := fixedClock(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	j := build(t, clk)

	// Act
	token, err := j.Generate("staff")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	claims, err := j.Verify(token)

	// Assert
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Username() != "staff" {
		t.Fatalf("expected subject %q, got %q", "staff", claims.Username())
	}
	if claims.Scope != jwt.ScopeAccess {
		t.Fatalf("expected scope %q, got %q", jwt.ScopeAccess, claims.Scope)
	}
	if claims.Issuer != "goccino" {
		t.Fatalf("expected issuer %q, got %q", "goccino", claims.Issuer)
	}
}

func TestSymmetricExpired(t *testing.T) {
	// Arrange
	clk := fixedClock(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	j := build(t, clk)

	token, err := j.Generate("staff")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// Act: move past the 30 minute TTL.
	clk.At = clk.At.Add(31 * time.Minute)
	_, err = j.Verify(token)

	// Assert
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestSymmetricTampered(t *testing.T) {
	// Arrange
	clk := fixedClock(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	j := build(t, clk)

	token, err := j.Generate("staff")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	// Act
	_, err = j.Verify(tampered)

	// Assert
	if !errors.Is(err, jwt.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSymmetricShortKey(t *testing.T) {
	// Act
	_, err := jwt.NewHS256(jwt.Config{
		Secret:     []byte("too-short"),
		Issuer:     "goccino",
		TTLMinutes: 30 * time.Minute,
		Clock:      clock.New(),
		UUID:       uid.NewUUID(),
	})

	// Assert
	if !errors.Is(err, jwt.ErrSigningKeyTooShort) {
		t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
	}
}
