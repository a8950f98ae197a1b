package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// ViewHandler отдаёт состояние списка товаров сессии: ввод применяется с задержкой.
type ViewHandler struct {
	viewUsecase usecase.ListViewUC
	validate    *validator.Validate
	logger      logger.Logger
}

func NewViewHandler(viewUsecase usecase.ListViewUC, validate *validator.Validate, logger logger.Logger) *ViewHandler {
	return &ViewHandler{viewUsecase: viewUsecase, validate: validate, logger: logger}
}

// getView
//
//	@Summary		Состояние списка
//	@Tags			view
//	@Produce		json
//	@Success		200	{object}	ListViewResponse
//	@Success		303	{object}	SessionResponse	"Требуется вход"
//	@Failure		502	{object}	ErrorResponse	"Ошибка внешнего каталога"
//	@Router			/products/view [get]
func (v *ViewHandler) getView(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := SessionFromContext(r.Context())

	view, err := v.viewUsecase.View(r.Context(), sessionID)
	if err != nil {
		v.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewListViewResponse(view))
}

// applyFilter
//
//	@Summary		Изменение фильтра
//	@Description	Сбрасывает страницу на первую и планирует пересчёт после паузы ввода
//	@Tags			view
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ApplyFilterRequest	true	"Новый ввод"
//	@Success		202		{object}	ListViewResponse
//	@Success		303		{object}	SessionResponse	"Требуется вход"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse	"Ошибка внешнего каталога"
//	@Router			/products/view/filter [post]
func (v *ViewHandler) applyFilter(w http.ResponseWriter, r *http.Request) {
	var req ApplyFilterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		v.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if err := v.validate.Struct(req); err != nil {
		err = validationError(err)
		v.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	sessionID, _ := SessionFromContext(r.Context())

	view, err := v.viewUsecase.ApplyFilter(r.Context(), sessionID, usecase.NewApplyFilterReq(req.Category, req.Search))
	if err != nil {
		v.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusAccepted, NewListViewResponse(view))
}

// setPage
//
//	@Summary		Переключение страницы
//	@Tags			view
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SetPageRequest	true	"Номер страницы"
//	@Success		200		{object}	ListViewResponse
//	@Success		303		{object}	SessionResponse	"Требуется вход"
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/view/page [post]
func (v *ViewHandler) setPage(w http.ResponseWriter, r *http.Request) {
	var req SetPageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		v.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if err := v.validate.Struct(req); err != nil {
		err = validationError(err)
		v.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	sessionID, _ := SessionFromContext(r.Context())

	view, err := v.viewUsecase.SetPage(r.Context(), sessionID, req.Page)
	if err != nil {
		v.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewListViewResponse(view))
}
