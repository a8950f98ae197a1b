package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// SessionRepository хранит флаг входа вне памяти процесса.
// Get возвращает e.ErrSessionNotFound для неизвестной сессии.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// CacheRepository кэширует ответы внешнего каталога. Промах — пустой результат без ошибки.
type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	GetCatalog(ctx context.Context) ([]domain.Product, error)
	SetCatalog(ctx context.Context, products []domain.Product) error
}
