package usecase

import "github.com/DRSN-tech/storefront/internal/domain"

// CATALOG USECASE

// ListProductsReq — запрос страницы отфильтрованного каталога.
type ListProductsReq struct {
	Category string
	Search   string
	Page     int
}

// ProductPage — страница отфильтрованного каталога.
type ProductPage struct {
	Products   []domain.Product
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
}

// LIST VIEW

// ApplyFilterReq — изменение ввода пользователя; nil — поле не меняется.
type ApplyFilterReq struct {
	Category *string
	Search   *string
}

// ListView — снимок состояния списка товаров сессии.
type ListView struct {
	Products   []domain.Product
	Filter     domain.FilterState
	PageSize   int
	TotalPages int
	TotalItems int
	Loaded     bool
	Pending    bool   // есть отложенный пересчёт фильтра
	Revision   uint64 // число применённых пересчётов
}

// MAPPERS

func NewListProductsReq(category string, search string, page int) *ListProductsReq {
	return &ListProductsReq{
		Category: category,
		Search:   search,
		Page:     page,
	}
}

func NewProductPage(products []domain.Product, page int, pageSize int, totalPages int, totalItems int) *ProductPage {
	return &ProductPage{
		Products:   products,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

func NewApplyFilterReq(category *string, search *string) *ApplyFilterReq {
	return &ApplyFilterReq{
		Category: category,
		Search:   search,
	}
}
