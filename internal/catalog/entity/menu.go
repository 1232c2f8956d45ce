package entity

// FoodItem is a drink or dish on the café menu.
type FoodItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// BookItem is a title on the café's reading shelf.
type BookItem struct {
	Title         string  `json:"title"`
	YearPublished int     `json:"year_published"`
	Price         float64 `json:"price"`
}

// Menu is the full catalog served to customers.
type Menu struct {
	Food  []FoodItem
	Books []BookItem
}
