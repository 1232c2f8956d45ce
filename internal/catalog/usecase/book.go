package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pythonccino/goccino/internal/catalog/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
)

type AddBookInput struct {
	Title         string  `validate:"required,min=1,max=200"`
	YearPublished int     `validate:"gte=0"`
	Price         float64 `validate:"gte=0"`
}

// AddBook puts a title on the reading shelf, replacing a same-titled entry.
func (s *Usecase) AddBook(ctx context.Context, in AddBookInput) error {
	ctx, span := s.startSpan(ctx, "AddBook")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoFile.UpsertBook(ctx, entity.BookItem{
		Title:         in.Title,
		YearPublished: in.YearPublished,
		Price:         in.Price,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert book item", "title", in.Title, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type DeleteBookInput struct {
	Title string `validate:"required"`
}

// DeleteBook removes a title from the reading shelf.
func (s *Usecase) DeleteBook(ctx context.Context, in DeleteBookInput) error {
	ctx, span := s.startSpan(ctx, "DeleteBook")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoFile.DeleteBook(ctx, in.Title)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "book item not found", "title", in.Title)
		return goerror.NewBusiness("book item not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete book item", "title", in.Title, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
