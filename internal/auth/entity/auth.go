package entity

import "time"

// TOTPEnrollment is the authenticator enrollment stored for an account.
//
// Secret holds the TOTP seed encrypted with secretbox, never the raw seed.
type TOTPEnrollment struct {
	Username  string
	Secret    []byte
	CreatedAt time.Time
}

// EmailChallenge is a pending one-time code sent to the account's email.
//
// CodeDigest is the HMAC-SHA256 digest of the code, never the code itself.
type EmailChallenge struct {
	Username   string
	CodeDigest string
	ExpiresAt  time.Time
}
