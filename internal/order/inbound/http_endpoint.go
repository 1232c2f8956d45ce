package inbound

import (
	"github.com/pythonccino/goccino/internal/order/entity"
	"github.com/pythonccino/goccino/internal/order/usecase"
	"github.com/pythonccino/goccino/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for customer orders and staff logs.
type HTTPEndpoint struct {
	uc uc
}

// PlaceFoodOrder takes a customer food order. This endpoint is public.
func (h *HTTPEndpoint) PlaceFoodOrder(r *router.Request) (any, error) {
	var req PlaceOrderRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PlaceFoodOrder(r.Context(), usecase.PlaceFoodOrderInput{
		Name:              req.Name,
		Email:             req.Email,
		EmailConfirmation: req.EmailConfirmation,
		Items:             orderItems(req.Items),
	})
	if err != nil {
		return nil, err
	}

	return placeOrderResponse(resp), nil
}

// PlaceBookOrder takes a customer book order. This endpoint is public.
func (h *HTTPEndpoint) PlaceBookOrder(r *router.Request) (any, error) {
	var req PlaceOrderRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PlaceBookOrder(r.Context(), usecase.PlaceBookOrderInput{
		Name:              req.Name,
		Email:             req.Email,
		EmailConfirmation: req.EmailConfirmation,
		Items:             orderItems(req.Items),
	})
	if err != nil {
		return nil, err
	}

	return placeOrderResponse(resp), nil
}

// FoodOrders returns the stored food order log.
func (h *HTTPEndpoint) FoodOrders(r *router.Request) (any, error) {
	groups, err := h.uc.FoodOrders(r.Context())
	if err != nil {
		return nil, err
	}

	return orderLogResponse(groups), nil
}

// BookOrders returns the stored book order log.
func (h *HTTPEndpoint) BookOrders(r *router.Request) (any, error) {
	groups, err := h.uc.BookOrders(r.Context())
	if err != nil {
		return nil, err
	}

	return orderLogResponse(groups), nil
}

func orderItems(items []OrderItemRequest) []usecase.OrderItemInput {
	out := make([]usecase.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.OrderItemInput{
			Item:     it.Item,
			Quantity: it.Quantity,
		})
	}
	return out
}

func placeOrderResponse(out *usecase.PlaceOrderOutput) PlaceOrderResponse {
	return PlaceOrderResponse{
		OrderNumber: out.OrderNumber,
		Items:       out.Lines,
		TotalAmount: out.TotalAmount,
	}
}

func orderLogResponse(groups []entity.CustomerOrders) OrderLogResponse {
	if groups == nil {
		groups = []entity.CustomerOrders{}
	}
	return OrderLogResponse{Orders: groups}
}
