package inbound

import (
	"github.com/pythonccino/goccino/internal/auth/usecase"
	"github.com/pythonccino/goccino/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the login and verification workflow.
type HTTPEndpoint struct {
	uc uc
}

// Login validates credentials and opens a second-factor challenge. The
// response never carries a token; clients continue with a verify endpoint.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		SecondFactor: resp.SecondFactor.String(),
		TOTPURI:      resp.TOTPURI,
		Detail:       resp.Message,
	}, nil
}

// VerifyTOTP completes the challenge with an authenticator code.
func (h *HTTPEndpoint) VerifyTOTP(r *router.Request) (any, error) {
	var req VerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyTOTP(r.Context(), usecase.VerifyTOTPInput{
		Username: req.Username,
		Code:     req.Code,
	})
	if err != nil {
		return nil, err
	}

	return tokenResponse(resp), nil
}

// VerifyMFA completes the challenge with a one-time email code.
func (h *HTTPEndpoint) VerifyMFA(r *router.Request) (any, error) {
	var req VerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyMFA(r.Context(), usecase.VerifyMFAInput{
		Username: req.Username,
		Code:     req.Code,
	})
	if err != nil {
		return nil, err
	}

	return tokenResponse(resp), nil
}

// Staff returns the account behind the presented session token.
func (h *HTTPEndpoint) Staff(r *router.Request) (any, error) {
	resp, err := h.uc.Staff(r.Context())
	if err != nil {
		return nil, err
	}

	return StaffResponse{Username: resp.Username}, nil
}

func tokenResponse(out *usecase.TokenOutput) TokenResponse {
	return TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   out.ExpiresIn,
	}
}
