package inbound

import (
	"context"

	"github.com/pythonccino/goccino/internal/auth/usecase"
	"github.com/pythonccino/goccino/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	VerifyTOTP(ctx context.Context, in usecase.VerifyTOTPInput) (*usecase.TokenOutput, error)
	VerifyMFA(ctx context.Context, in usecase.VerifyMFAInput) (*usecase.TokenOutput, error)
	Staff(ctx context.Context) (*usecase.StaffOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Login & second-factor verification
	r.POST("/api/v1/auth/token", end.Login)
	r.POST("/api/v1/auth/verify_totp", end.VerifyTOTP)
	r.POST("/api/v1/auth/verify_mfa", end.VerifyMFA)

	// Session introspection (need authenticated)
	r.GET("/api/v1/auth/staff", end.Staff)
}
