package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	validate       *validator.Validate
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, validate *validator.Validate, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, validate: validate, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Страница каталога по 6 товаров с фильтром по категории и подстроке названия
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string				false	"Категория"	Enums(smartphones, fragrances, laptops, skincare, groceries, home-decoration)
//	@Param			search		query		string				false	"Подстрока названия"
//	@Param			page		query		int					false	"Номер страницы, с 1"
//	@Success		200			{object}	ProductPageResponse
//	@Success		303			{object}	SessionResponse	"Требуется вход"
//	@Failure		400			{object}	ErrorResponse
//	@Failure		502			{object}	ErrorResponse	"Ошибка внешнего каталога"
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := parseOptionalInt(q.Get("page"))
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	query := ListProductsQuery{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     page,
	}
	if err := p.validate.Struct(query); err != nil {
		err = validationError(err)
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.catalogUsecase.Query(r.Context(), usecase.NewListProductsReq(query.Category, query.Search, query.Page))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductPageResponse(res))
}

// getProduct
//
//	@Summary		Карточка товара
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse
//	@Success		303	{object}	SessionResponse	"Требуется вход"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse	"Product not found"
//	@Failure		502	{object}	ErrorResponse	"Ошибка внешнего каталога"
//	@Router			/product/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		p.logger.Warnf("%d %s: %q", http.StatusBadRequest, e.ErrInvalidProductID.Error(), chi.URLParam(r, "id"))
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	sessionID, _ := SessionFromContext(r.Context())

	product, err := p.catalogUsecase.ViewProduct(r.Context(), sessionID, id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// listCategories
//
//	@Summary		Категории
//	@Description	Меню категорий витрины
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	CategoryResponse
//	@Router			/categories [get]
func (p *ProductHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewCategoryResponses(p.catalogUsecase.Categories()))
}
