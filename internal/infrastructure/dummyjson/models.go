package dummyjson

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// productsEnvelope — ответ GET /products
type productsEnvelope struct {
	Products []productDTO `json:"products"`
	Total    int          `json:"total"`
	Skip     int          `json:"skip"`
	Limit    int          `json:"limit"`
}

// productDTO — товар в ответе внешнего каталога
type productDTO struct {
	ID                 int64            `json:"id" validate:"gt=0"`
	Title              string           `json:"title" validate:"required"`
	Description        string           `json:"description"`
	Price              decimal.Decimal  `json:"price"`
	DiscountPercentage decimal.Decimal  `json:"discountPercentage"`
	Rating             *decimal.Decimal `json:"rating"`
	Stock              *int64           `json:"stock"`
	Brand              string           `json:"brand"`
	Category           string           `json:"category"`
	Thumbnail          string           `json:"thumbnail"`
	Images             []string         `json:"images"`
}

func (d *productDTO) toDomain() domain.Product {
	images := make([]string, len(d.Images))
	copy(images, d.Images)

	return domain.Product{
		ID:                 d.ID,
		Title:              d.Title,
		Description:        d.Description,
		Price:              d.Price,
		DiscountPercentage: d.DiscountPercentage,
		Rating:             d.Rating,
		Stock:              d.Stock,
		Brand:              d.Brand,
		Category:           d.Category,
		Images:             images,
		Thumbnail:          d.Thumbnail,
	}
}
