package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pythonccino/goccino/internal/catalog/outbound/file"
	"github.com/pythonccino/goccino/internal/catalog/usecase"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/validator"
)

func newUsecase(t *testing.T) *usecase.Usecase {
	t.Helper()

	dir := t.TempDir()
	ins := instrument.NewNoop()
	store := file.NewStore(
		filepath.Join(dir, "food_menu.json"),
		filepath.Join(dir, "book_menu.json"),
		ins,
	)

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: goccino\n"))
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator failed: %v", err)
	}

	return usecase.New(usecase.Dependency{
		RepoFile:   store,
		Validator:  v10,
		Config:     cfg,
		Instrument: ins,
	})
}

func TestMenuRoundTrip(t *testing.T) {
	// Arrange
	uc := newUsecase(t)
	ctx := context.Background()

	if err := uc.AddFood(ctx, usecase.AddFoodInput{Name: "Cappuccino", Description: "Espresso with steamed milk", Price: 3.20}); err != nil {
		t.Fatalf("add food failed: %v", err)
	}
	if err := uc.AddBook(ctx, usecase.AddBookInput{Title: "The Pragmatic Programmer", YearPublished: 1999, Price: 28.00}); err != nil {
		t.Fatalf("add book failed: %v", err)
	}

	// Act
	menu, err := uc.Menu(ctx)

	// Assert
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if len(menu.Food) != 1 || menu.Food[0].Name != "Cappuccino" {
		t.Fatalf("unexpected food menu: %+v", menu.Food)
	}
	if len(menu.Books) != 1 || menu.Books[0].Title != "The Pragmatic Programmer" {
		t.Fatalf("unexpected book menu: %+v", menu.Books)
	}
}

func TestMenuEmpty(t *testing.T) {
	// Arrange
	uc := newUsecase(t)

	// Act: no menu files exist yet.
	menu, err := uc.Menu(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if len(menu.Food) != 0 || len(menu.Books) != 0 {
		t.Fatalf("expected empty menus, got %+v", menu)
	}
}

func TestDeleteFoodNotFound(t *testing.T) {
	// Arrange
	uc := newUsecase(t)

	// Act
	err := uc.DeleteFood(context.Background(), usecase.DeleteFoodInput{Name: "Flat White"})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected a goerror.Error, got %v", err)
	}
	if gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", gerr.Code())
	}
}

func TestDeleteBookNotFound(t *testing.T) {
	// Arrange
	uc := newUsecase(t)

	// Act
	err := uc.DeleteBook(context.Background(), usecase.DeleteBookInput{Title: "Unknown Title"})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected a goerror.Error, got %v", err)
	}
	if gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", gerr.Code())
	}
}

func TestAddFoodRejectsEmptyName(t *testing.T) {
	// Arrange
	uc := newUsecase(t)

	// Act
	err := uc.AddFood(context.Background(), usecase.AddFoodInput{Name: "   ", Price: 1})

	// Assert
	if err == nil {
		t.Fatalf("expected a validation error")
	}
}

func TestDeleteFoodThenMenu(t *testing.T) {
	// Arrange
	uc := newUsecase(t)
	ctx := context.Background()

	if err := uc.AddFood(ctx, usecase.AddFoodInput{Name: "Cappuccino", Price: 3.20}); err != nil {
		t.Fatalf("add food failed: %v", err)
	}

	// Act
	if err := uc.DeleteFood(ctx, usecase.DeleteFoodInput{Name: "Cappuccino"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	menu, err := uc.Menu(ctx)

	// Assert
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if len(menu.Food) != 0 {
		t.Fatalf("expected an empty food menu, got %+v", menu.Food)
	}
}
