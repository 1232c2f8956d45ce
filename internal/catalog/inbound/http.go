package inbound

import (
	"context"

	"github.com/pythonccino/goccino/internal/catalog/entity"
	"github.com/pythonccino/goccino/internal/catalog/usecase"
	"github.com/pythonccino/goccino/internal/pkg/router"
)

type uc interface {
	Menu(ctx context.Context) (*entity.Menu, error)
	AddFood(ctx context.Context, in usecase.AddFoodInput) error
	DeleteFood(ctx context.Context, in usecase.DeleteFoodInput) error
	AddBook(ctx context.Context, in usecase.AddBookInput) error
	DeleteBook(ctx context.Context, in usecase.DeleteBookInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Public menu page
	r.GET("/api/v1/menu", end.Menu)

	// Menu management (need authenticated)
	r.POST("/api/v1/menu/food", end.AddFood)
	r.DELETE("/api/v1/menu/food/:name", end.DeleteFood)
	r.POST("/api/v1/menu/books", end.AddBook)
	r.DELETE("/api/v1/menu/books/:title", end.DeleteBook)
}
