package entity

import "time"

// OrderLine is one priced line of an order.
type OrderLine struct {
	Item        string  `json:"item"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// OrderRecord is a single placed order.
type OrderRecord struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"order_number"`
	PlacedAt    time.Time   `json:"placed_at"`
	Lines       []OrderLine `json:"items"`
	TotalAmount float64     `json:"total_amount"`
}

// CustomerOrders groups the order log by customer name. Repeat orders from
// the same customer append to the same group.
type CustomerOrders struct {
	Name   string        `json:"name"`
	Orders []OrderRecord `json:"orders"`
}

// MenuFood is the menu entry an order line resolves against.
type MenuFood struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// MenuBook is the shelf entry a book order line resolves against.
type MenuBook struct {
	Title         string  `json:"title"`
	YearPublished int     `json:"year_published"`
	Price         float64 `json:"price"`
}
