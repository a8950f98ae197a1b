package e

import "fmt"

var (
	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownSessionStore  = fmt.Errorf("unknown session backend")

	// Внешний каталог
	ErrFetchFailed     = fmt.Errorf("error fetching data")
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrInvalidProduct  = fmt.Errorf("invalid product payload")

	// Сессии
	ErrSessionNotFound = fmt.Errorf("session not found")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidProductID = fmt.Errorf("invalid product id")
	ErrInvalidPage      = fmt.Errorf("invalid page number")
	ErrInvalidCategory  = fmt.Errorf("unknown category")

	// 500
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
