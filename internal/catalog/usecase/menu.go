package usecase

import (
	"context"
	"log/slog"

	"github.com/pythonccino/goccino/internal/catalog/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

// Menu returns both menus for the public menu page.
func (s *Usecase) Menu(ctx context.Context) (*entity.Menu, error) {
	ctx, span := s.startSpan(ctx, "Menu")
	defer span.End()

	food, err := s.repoFile.ListFood(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list food menu", "error", err)
		return nil, goerror.NewServer(err)
	}

	books, err := s.repoFile.ListBooks(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list book menu", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &entity.Menu{Food: food, Books: books}, nil
}
