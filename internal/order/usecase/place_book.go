package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pythonccino/goccino/internal/order/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

type PlaceBookOrderInput struct {
	Name              string           `validate:"required,min=1,max=100"`
	Email             string           `validate:"omitempty,email"`
	EmailConfirmation bool             `validate:"-"`
	Items             []OrderItemInput `validate:"required,min=1,dive"`
}

// PlaceBookOrder prices the requested titles against the reading shelf,
// records the order and optionally mails a confirmation. Unknown titles are
// taken at a zero price.
func (s *Usecase) PlaceBookOrder(ctx context.Context, in PlaceBookOrderInput) (*PlaceOrderOutput, error) {
	ctx, span := s.startSpan(ctx, "PlaceBookOrder")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	lines := make([]entity.OrderLine, 0, len(in.Items))
	for _, item := range in.Items {
		menuItem, err := s.repoFile.LookupBook(ctx, item.Item)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo lookup book item", "item", item.Item, "error", err)
			return nil, goerror.NewServer(err)
		}

		line := entity.OrderLine{
			Item:      item.Item,
			Quantity:  item.Quantity,
			UnitPrice: 0,
		}
		if menuItem != nil {
			line.UnitPrice = menuItem.Price
		}
		line.Amount = line.UnitPrice * float64(item.Quantity)
		lines = append(lines, line)
	}

	rec := s.newRecord(lines)
	if err := s.repoFile.AppendBookOrder(ctx, in.Name, rec); err != nil {
		slog.ErrorContext(ctx, "failed to repo append book order", "customer", in.Name, "error", err)
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
