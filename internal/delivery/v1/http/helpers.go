package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/go-playground/validator/v10"
)

// Тексты, которые видит пользователь
const (
	msgFetchFailed     = "Error fetching data. Please try again later."
	msgProductNotFound = "Product not found"
	msgLoginRequired   = "Please login to view products."
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrInvalidPage):
		return http.StatusBadRequest, e.ErrInvalidPage.Error()
	case errors.Is(err, e.ErrInvalidCategory):
		return http.StatusBadRequest, e.ErrInvalidCategory.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, msgProductNotFound
	case errors.Is(err, e.ErrFetchFailed):
		return http.StatusBadGateway, msgFetchFailed
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteRedirect отвечает 303 с телом-подсказкой для JSON-клиентов.
func WriteRedirect(w http.ResponseWriter, location string, data interface{}) {
	w.Header().Set("Location", location)
	WriteSuccess(w, http.StatusSeeOther, data)
}

// newValidator создаёт валидатор с правилом category для фиксированного набора категорий.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.IsKnownCategory(fl.Field().String())
	})

	return v
}

// validationError сводит ошибки валидатора к сентинелам e.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "category":
			return e.Wrap(verrs[0].Field(), e.ErrInvalidCategory)
		}
		switch verrs[0].Field() {
		case "Page":
			return e.Wrap(verrs[0].Field(), e.ErrInvalidPage)
		}
		return e.Wrap(fmt.Sprintf("%s failed on %s", verrs[0].Field(), verrs[0].Tag()), e.ErrStatusBadRequest)
	}

	return e.Wrap(err.Error(), e.ErrStatusBadRequest)
}

// parseOptionalInt разбирает необязательный целочисленный параметр; пустая строка — 0.
func parseOptionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, e.Wrap(fmt.Sprintf("not a number: %q", s), e.ErrStatusBadRequest)
	}

	return v, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	const maxBody = 1 << 20

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap("decode body", fmt.Errorf("%w: %w", e.ErrStatusBadRequest, err))
	}

	return nil
}
