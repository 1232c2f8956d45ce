package file_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pythonccino/goccino/internal/catalog/entity"
	"github.com/pythonccino/goccino/internal/catalog/outbound/file"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
)

func newStore(t *testing.T) *file.Store {
	t.Helper()

	dir := t.TempDir()
	return file.NewStore(
		filepath.Join(dir, "food_menu.json"),
		filepath.Join(dir, "book_menu.json"),
		instrument.NewNoop(),
	)
}

func TestListFoodMissingFile(t *testing.T) {
	// Arrange
	store := newStore(t)

	// Act
	items, err := store.ListFood(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected an empty menu, got %d items", len(items))
	}
}

func TestUpsertFoodRoundTrip(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()

	// Act
	if err := store.UpsertFood(ctx, entity.FoodItem{Name: "Cappuccino", Description: "Espresso with steamed milk", Price: 3.20}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := store.UpsertFood(ctx, entity.FoodItem{Name: "Croissant", Description: "Butter croissant", Price: 2.10}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	items, err := store.ListFood(ctx)

	// Assert
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Cappuccino" || items[0].Price != 3.20 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
}

func TestUpsertFoodReplacesSameName(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()

	if err := store.UpsertFood(ctx, entity.FoodItem{Name: "Cappuccino", Price: 3.20}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Act: a second upsert with the same name updates in place.
	if err := store.UpsertFood(ctx, entity.FoodItem{Name: "Cappuccino", Description: "Now with oat milk", Price: 3.50}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	items, err := store.ListFood(ctx)

	// Assert
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Price != 3.50 || items[0].Description != "Now with oat milk" {
		t.Fatalf("expected the later entry to win, got %+v", items[0])
	}
}

func TestDeleteFood(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()

	if err := store.UpsertFood(ctx, entity.FoodItem{Name: "Cappuccino", Price: 3.20}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Act
	err := store.DeleteFood(ctx, "Cappuccino")

	// Assert
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	items, err := store.ListFood(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected an empty menu after delete, got %d items", len(items))
	}
}

func TestDeleteFoodAbsent(t *testing.T) {
	// Arrange
	store := newStore(t)

	// Act
	err := store.DeleteFood(context.Background(), "Flat White")

	// Assert
	if !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookRoundTrip(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()
	book := entity.BookItem{Title: "The Pragmatic Programmer", YearPublished: 1999, Price: 28.00}

	// Act
	if err := store.UpsertBook(ctx, book); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	books, err := store.ListBooks(ctx)

	// Assert
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}
	if books[0] != book {
		t.Fatalf("unexpected book: %+v", books[0])
	}
}

func TestDeleteBookAbsent(t *testing.T) {
	// Arrange
	store := newStore(t)

	// Act
	err := store.DeleteBook(context.Background(), "Unknown Title")

	// Assert
	if !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
