// Package file persists the menu as JSON documents on disk.
package file

import (
	"context"
	"sync"

	"github.com/pythonccino/goccino/internal/catalog/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/jsonfile"
	"go.opentelemetry.io/otel/trace"
)

// Store reads and writes the food and book menus.
type Store struct {
	foodPath string
	bookPath string
	ins      instrument.Instrumentation
	mu       sync.RWMutex
}

func NewStore(foodPath, bookPath string, ins instrument.Instrumentation) *Store {
	return &Store{
		foodPath: foodPath,
		bookPath: bookPath,
		ins:      ins,
	}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.outbound.file").Start(ctx, name)
}

// ListFood returns the food menu. A missing file is an empty menu.
func (s *Store) ListFood(ctx context.Context) ([]entity.FoodItem, error) {
	_, span := s.startSpan(ctx, "ListFood")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entity.FoodItem
	if err := jsonfile.Read(s.foodPath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListBooks returns the book menu. A missing file is an empty menu.
func (s *Store) ListBooks(ctx context.Context) ([]entity.BookItem, error) {
	_, span := s.startSpan(ctx, "ListBooks")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entity.BookItem
	if err := jsonfile.Read(s.bookPath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertFood adds the item, replacing any entry with the same name.
func (s *Store) UpsertFood(ctx context.Context, item entity.FoodItem) error {
	_, span := s.startSpan(ctx, "UpsertFood")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []entity.FoodItem
	if err := jsonfile.Read(s.foodPath, &items); err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].Name == item.Name {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	return jsonfile.Write(s.foodPath, items)
}

// UpsertBook adds the item, replacing any entry with the same title.
func (s *Store) UpsertBook(ctx context.Context, item entity.BookItem) error {
	_, span := s.startSpan(ctx, "UpsertBook")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []entity.BookItem
	if err := jsonfile.Read(s.bookPath, &items); err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].Title == item.Title {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	return jsonfile.Write(s.bookPath, items)
}

// DeleteFood removes the named item or returns goerror.ErrNotFound.
func (s *Store) DeleteFood(ctx context.Context, name string) error {
	_, span := s.startSpan(ctx, "DeleteFood")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []entity.FoodItem
	if err := jsonfile.Read(s.foodPath, &items); err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, it := range items {
		if it.Name == name {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return goerror.ErrNotFound
	}

	return jsonfile.Write(s.foodPath, kept)
}

// DeleteBook removes the titled item or returns goerror.ErrNotFound.
func (s *Store) DeleteBook(ctx context.Context, title string) error {
	_, span := s.startSpan(ctx, "DeleteBook")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []entity.BookItem
	if err := jsonfile.Read(s.bookPath, &items); err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, it := range items {
		if it.Title == title {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return goerror.ErrNotFound
	}

	return jsonfile.Write(s.bookPath, kept)
}
