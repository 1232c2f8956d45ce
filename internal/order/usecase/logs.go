package usecase

import (
	"context"
	"log/slog"

	"github.com/pythonccino/goccino/internal/order/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

// FoodOrders returns the food order log for the staff view.
func (s *Usecase) FoodOrders(ctx context.Context) ([]entity.CustomerOrders, error) {
	ctx, span := s.startSpan(ctx, "FoodOrders")
	defer span.End()

	groups, err := s.repoFile.ListFoodOrders(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list food orders", "error", err)
		return nil, goerror.NewServer(err)
	}

	return groups, nil
}

// BookOrders returns the book order log for the staff view.
func (s *Usecase) BookOrders(ctx context.Context) ([]entity.CustomerOrders, error) {
	ctx, span := s.startSpan(ctx, "BookOrders")
	defer span.End()

	groups, err := s.repoFile.ListBookOrders(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list book orders", "error", err)
		return nil, goerror.NewServer(err)
	}

	return groups, nil
}
