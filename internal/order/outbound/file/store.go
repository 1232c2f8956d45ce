// Package file persists order logs as JSON documents and reads the menu
// files for price lookups.
package file

import (
	"context"
	"sync"

	"github.com/pythonccino/goccino/internal/order/entity"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/jsonfile"
	"go.opentelemetry.io/otel/trace"
)

// Store appends to and reads the food and book order logs.
type Store struct {
	foodMenuPath   string
	bookMenuPath   string
	foodOrdersPath string
	bookOrdersPath string
	ins            instrument.Instrumentation
	mu             sync.RWMutex
}

type Paths struct {
	FoodMenu   string
	BookMenu   string
	FoodOrders string
	BookOrders string
}

func NewStore(paths Paths, ins instrument.Instrumentation) *Store {
	return &Store{
		foodMenuPath:   paths.FoodMenu,
		bookMenuPath:   paths.BookMenu,
		foodOrdersPath: paths.FoodOrders,
		bookOrdersPath: paths.BookOrders,
		ins:            ins,
	}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("order.outbound.file").Start(ctx, name)
}

// LookupFood returns the menu entry for name, or nil when it is not on the
// menu.
func (s *Store) LookupFood(ctx context.Context, name string) (*entity.MenuFood, error) {
	_, span := s.startSpan(ctx, "LookupFood")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entity.MenuFood
	if err := jsonfile.Read(s.foodMenuPath, &items); err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Name == name {
			return &items[i], nil
		}
	}
	return nil, nil
}

// LookupBook returns the shelf entry for title, or nil when it is not on the
// shelf.
func (s *Store) LookupBook(ctx context.Context, title string) (*entity.MenuBook, error) {
	_, span := s.startSpan(ctx, "LookupBook")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entity.MenuBook
	if err := jsonfile.Read(s.bookMenuPath, &items); err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Title == title {
			return &items[i], nil
		}
	}
	return nil, nil
}

// AppendFoodOrder adds rec to the customer's group in the food order log.
func (s *Store) AppendFoodOrder(ctx context.Context, customer string, rec entity.OrderRecord) error {
	_, span := s.startSpan(ctx, "AppendFoodOrder")
	defer span.End()

	return s.appendOrder(s.foodOrdersPath, customer, rec)
}

// AppendBookOrder adds rec to the customer's group in the book order log.
func (s *Store) AppendBookOrder(ctx context.Context, customer string, rec entity.OrderRecord) error {
	_, span := s.startSpan(ctx, "AppendBookOrder")
	defer span.End()

	return s.appendOrder(s.bookOrdersPath, customer, rec)
}

// ListFoodOrders returns the food order log grouped by customer.
func (s *Store) ListFoodOrders(ctx context.Context) ([]entity.CustomerOrders, error) {
	_, span := s.startSpan(ctx, "ListFoodOrders")
	defer span.End()

	return s.listOrders(s.foodOrdersPath)
}

// ListBookOrders returns the book order log grouped by customer.
func (s *Store) ListBookOrders(ctx context.Context) ([]entity.CustomerOrders, error) {
	_, span := s.startSpan(ctx, "ListBookOrders")
	defer span.End()

	return s.listOrders(s.bookOrdersPath)
}

func (s *Store) appendOrder(path, customer string, rec entity.OrderRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var groups []entity.CustomerOrders
	if err := jsonfile.Read(path, &groups); err != nil {
		return err
	}

	appended := false
	for i := range groups {
		if groups[i].Name == customer {
			groups[i].Orders = append(groups[i].Orders, rec)
			appended = true
			break
		}
	}
	if !appended {
		groups = append(groups, entity.CustomerOrders{
			Name:   customer,
			Orders: []entity.OrderRecord{rec},
		})
	}

	return jsonfile.Write(path, groups)
}

func (s *Store) listOrders(path string) ([]entity.CustomerOrders, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var groups []entity.CustomerOrders
	if err := jsonfile.Read(path, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
