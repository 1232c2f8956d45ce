package inbound

import "github.com/pythonccino/goccino/internal/order/entity"

type OrderItemRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	EmailConfirmation bool               `json:"email_confirmation"`
	Items             []OrderItemRequest `json:"items"`
}

type PlaceOrderResponse struct {
	OrderNumber string             `json:"order_number"`
	Items       []entity.OrderLine `json:"items"`
	TotalAmount float64            `json:"total_amount"`
}

type OrderLogResponse struct {
	Orders []entity.CustomerOrders `json:"orders"`
}
