package inbound

import "github.com/pythonccino/goccino/internal/catalog/entity"

type MenuResponse struct {
	FoodMenu []entity.FoodItem `json:"food_menu"`
	BookMenu []entity.BookItem `json:"book_menu"`
}

type AddFoodRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type AddFoodResponse struct{}

func (AddFoodResponse) Message() string {
	return "Food item added to the menu."
}

type AddBookRequest struct {
	Title         string  `json:"title"`
	YearPublished int     `json:"year_published"`
	Price         float64 `json:"price"`
}

type AddBookResponse struct{}

func (AddBookResponse) Message() string {
	return "Book added to the menu."
}
