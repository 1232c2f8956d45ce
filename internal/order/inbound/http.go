package inbound

import (
	"context"

	"github.com/pythonccino/goccino/internal/order/entity"
	"github.com/pythonccino/goccino/internal/order/usecase"
	"github.com/pythonccino/goccino/internal/pkg/router"
)

type uc interface {
	PlaceFoodOrder(ctx context.Context, in usecase.PlaceFoodOrderInput) (*usecase.PlaceOrderOutput, error)
	PlaceBookOrder(ctx context.Context, in usecase.PlaceBookOrderInput) (*usecase.PlaceOrderOutput, error)
	FoodOrders(ctx context.Context) ([]entity.CustomerOrders, error)
	BookOrders(ctx context.Context) ([]entity.CustomerOrders, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Customer ordering (public)
	r.POST("/api/v1/orders/food", end.PlaceFoodOrder)
	r.POST("/api/v1/orders/book", end.PlaceBookOrder)

	// Order logs (need authenticated)
	r.GET("/api/v1/orders/food", end.FoodOrders)
	r.GET("/api/v1/orders/book", end.BookOrders)
}
