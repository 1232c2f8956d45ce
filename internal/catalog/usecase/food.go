package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pythonccino/goccino/internal/catalog/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

type AddFoodInput struct {
	Name        string  `validate:"required,min=1,max=100"`
	Description string  `validate:"max=500"`
	Price       float64 `validate:"gte=0"`
}

// AddFood puts an item on the food menu, replacing a same-named entry.
func (s *Usecase) AddFood(ctx context.Context, in AddFoodInput) error {
	ctx, span := s.startSpan(ctx, "AddFood")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoFile.UpsertFood(ctx, entity.FoodItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert food item", "name", in.Name, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type DeleteFoodInput struct {
	Name string `validate:"required"`
}

// DeleteFood removes an item from the food menu.
func (s *Usecase) DeleteFood(ctx context.Context, in DeleteFoodInput) error {
	ctx, span := s.startSpan(ctx, "DeleteFood")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoFile.DeleteFood(ctx, in.Name)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "food item not found", "name", in.Name)
		return goerror.NewBusiness("food item not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete food item", "name", in.Name, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
