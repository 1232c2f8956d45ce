package usecase

import (
	"context"

	"github.com/pythonccino/goccino/internal/pkg/goerror"
	"github.com/pythonccino/goccino/internal/pkg/jwt"
)

type StaffOutput struct {
	Username string
}

// Staff returns the identity carried by the verified session token.
func (s *Usecase) Staff(ctx context.Context) (*StaffOutput, error) {
	_, span := s.startSpan(ctx, "Staff")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return &StaffOutput{Username: clm.Username()}, nil
}
