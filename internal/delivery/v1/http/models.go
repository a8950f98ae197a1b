package http

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

// REQUESTS

// ListProductsQuery — параметры GET /products
type ListProductsQuery struct {
	Category string `validate:"category"`
	Search   string `validate:"max=100"`
	Page     int    `validate:"gte=0"`
}

// ApplyFilterRequest — изменение ввода списка; отсутствующее поле не меняется
type ApplyFilterRequest struct {
	Category *string `json:"category,omitempty" validate:"omitempty,category"`
	Search   *string `json:"search,omitempty" validate:"omitempty,max=100"`
}

// SetPageRequest — переключение страницы списка
type SetPageRequest struct {
	Page int `json:"page" validate:"gte=1"`
}

// RESPONSES

type ProductResponse struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              string   `json:"price"`
	DiscountPercentage string   `json:"discountPercentage"`
	DiscountedPrice    string   `json:"discountedPrice"`
	Rating             *string  `json:"rating,omitempty"`
	Stock              *int64   `json:"stock,omitempty"`
	Brand              string   `json:"brand,omitempty"`
	Category           string   `json:"category"`
	Images             []string `json:"images"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
}

type ProductPageResponse struct {
	Products   []ProductResponse `json:"products"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	TotalItems int               `json:"totalItems"`
}

// ListViewResponse — состояние списка сессии
type ListViewResponse struct {
	Products   []ProductResponse `json:"products"`
	Category   string            `json:"category"`
	Search     string            `json:"search"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	TotalItems int               `json:"totalItems"`
	Loaded     bool              `json:"loaded"`
	Pending    bool              `json:"pending"`
	Revision   uint64            `json:"revision"`
}

type CategoryResponse struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// SessionResponse — состояние входа, отдаётся страницами входа и выхода
type SessionResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// MAPPERS

func NewProductResponse(p *domain.Product) ProductResponse {
	var rating *string
	if p.Rating != nil {
		s := p.Rating.String()
		rating = &s
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return ProductResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price.String(),
		DiscountPercentage: p.DiscountPercentage.String(),
		DiscountedPrice:    p.DiscountedPrice().StringFixed(2),
		Rating:             rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		Category:           p.Category,
		Images:             images,
		Thumbnail:          p.Thumbnail,
	}
}

func NewProductResponses(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, NewProductResponse(&products[i]))
	}

	return res
}

func NewProductPageResponse(page *usecase.ProductPage) *ProductPageResponse {
	return &ProductPageResponse{
		Products:   NewProductResponses(page.Products),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
}

func NewListViewResponse(view *usecase.ListView) *ListViewResponse {
	return &ListViewResponse{
		Products:   NewProductResponses(view.Products),
		Category:   view.Filter.Category,
		Search:     view.Filter.Search,
		Page:       view.Filter.Page,
		PageSize:   view.PageSize,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
		Loaded:     view.Loaded,
		Pending:    view.Pending,
		Revision:   view.Revision,
	}
}

func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, CategoryResponse{Slug: c.Slug, Label: c.Label})
	}

	return res
}
