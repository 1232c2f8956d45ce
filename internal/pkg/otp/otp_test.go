package otp_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	libOTP "github.com/pquerna/otp"
	"github.com/pythonccino/goccino/internal/pkg/otp"
)

func TestTOTPGenerate(t *testing.T) {
	// Arrange
	o := otp.NewTOTP("Pythonccino", 30, 1, libOTP.DigitsSix)

	// Act
	secret, uri, err := o.Generate("staff")

	// Assert
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if secret == "" {
		t.Fatalf("expected a non-empty secret")
	}
	if !strings.HasPrefix(uri, "otpauth://totp/") {
		t.Fatalf("unexpected provisioning uri: %q", uri)
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		t.Fatalf("parse uri failed: %v", err)
	}
	if got := parsed.Query().Get("issuer"); got != "Pythonccino" {
		t.Fatalf("expected issuer %q, got %q", "Pythonccino", got)
	}
	if got := parsed.Query().Get("secret"); got != secret {
		t.Fatalf("expected uri secret to match the returned secret")
	}
}

func TestTOTPValidate(t *testing.T) {
	// Arrange
	o := otp.NewTOTP("Pythonccino", 30, 1, libOTP.DigitsSix)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	secret, _, err := o.Generate("staff")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	code, err := o.GenerateCode(secret, at)
	if err != nil {
		t.Fatalf("generate code failed: %v", err)
	}

	// Act & Assert
	if !o.Validate(code, secret, at) {
		t.Fatalf("expected a current code to validate")
	}
	if !o.Validate(code, secret, at.Add(30*time.Second)) {
		t.Fatalf("expected a code one period away to validate within skew")
	}
	if o.Validate(code, secret, at.Add(5*30*time.Second)) {
		t.Fatalf("expected a code five periods away to be rejected")
	}
	if o.Validate("000000", secret, at) && code != "000000" {
		t.Fatalf("expected a wrong code to be rejected")
	}
}
