package inbound

import (
	"github.com/pythonccino/goccino/internal/catalog/entity"
	"github.com/pythonccino/goccino/internal/catalog/usecase"
	"github.com/pythonccino/goccino/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the menu catalog.
type HTTPEndpoint struct {
	uc uc
}

// Menu lists both menus. This endpoint is public.
func (h *HTTPEndpoint) Menu(r *router.Request) (any, error) {
	resp, err := h.uc.Menu(r.Context())
	if err != nil {
		return nil, err
	}

	out := MenuResponse{
		FoodMenu: resp.Food,
		BookMenu: resp.Books,
	}
	if out.FoodMenu == nil {
		out.FoodMenu = []entity.FoodItem{}
	}
	if out.BookMenu == nil {
		out.BookMenu = []entity.BookItem{}
	}

	return out, nil
}

// AddFood puts an item on the food menu.
func (h *HTTPEndpoint) AddFood(r *router.Request) (any, error) {
	var req AddFoodRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.AddFood(r.Context(), usecase.AddFoodInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}); err != nil {
		return nil, err
	}

	return AddFoodResponse{}, nil
}

// DeleteFood removes an item from the food menu.
func (h *HTTPEndpoint) DeleteFood(r *router.Request) (any, error) {
	if err := h.uc.DeleteFood(r.Context(), usecase.DeleteFoodInput{
		Name: r.GetParam("name"),
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// AddBook puts a title on the reading shelf.
func (h *HTTPEndpoint) AddBook(r *router.Request) (any, error) {
	var req AddBookRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.AddBook(r.Context(), usecase.AddBookInput{
		Title:         req.Title,
		YearPublished: req.YearPublished,
		Price:         req.Price,
	}); err != nil {
		return nil, err
	}

	return AddBookResponse{}, nil
}

// DeleteBook removes a title from the reading shelf.
func (h *HTTPEndpoint) DeleteBook(r *router.Request) (any, error) {
	if err := h.uc.DeleteBook(r.Context(), usecase.DeleteBookInput{
		Title: r.GetParam("title"),
	}); err != nil {
		return nil, err
	}

	return nil, nil
}
