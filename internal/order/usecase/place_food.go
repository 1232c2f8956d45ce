package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pythonccino/goccino/internal/order/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

type PlaceFoodOrderInput struct {
	Name              string           `validate:"required,min=1,max=100"`
	Email             string           `validate:"omitempty,email"`
	EmailConfirmation bool             `validate:"-"`
	Items             []OrderItemInput `validate:"required,min=1,dive"`
}

// PlaceFoodOrder prices the requested items against the food menu, records
// the order under the customer's name and optionally mails a confirmation.
// Items that are not on the menu are still taken, with no description and a
// zero price, so the counter can sort it out in person.
func (s *Usecase) PlaceFoodOrder(ctx context.Context, in PlaceFoodOrderInput) (*PlaceOrderOutput, error) {
	ctx, span := s.startSpan(ctx, "PlaceFoodOrder")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	lines := make([]entity.OrderLine, 0, len(in.Items))
	for _, item := range in.Items {
		menuItem, err := s.repoFile.LookupFood(ctx, item.Item)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo lookup food item", "item", item.Item, "error", err)
			return nil, goerror.NewServer(err)
		}

		line := entity.OrderLine{
			Item:        item.Item,
			Quantity:    item.Quantity,
			Description: noDescription,
			UnitPrice:   0,
		}
		if menuItem != nil {
			line.UnitPrice = menuItem.Price
			if menuItem.Description != "" {
				line.Description = menuItem.Description
			}
		}
		line.Amount = line.UnitPrice * float64(item.Quantity)
		lines = append(lines, line)
	}

	rec := s.newRecord(lines)
	if err := s.repoFile.AppendFoodOrder(ctx, in.Name, rec); err != nil {
		slog.ErrorContext(ctx, "failed to repo append food order", "customer", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	if in.EmailConfirmation && in.Email != "" {
		s.sendConfirmation(ctx, in.Email, in.Name, rec)
	}

	return &PlaceOrderOutput{
		OrderNumber: rec.OrderNumber,
		Lines:       rec.Lines,
		TotalAmount: rec.TotalAmount,
	}, nil
}
