package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// ProductFetcher — внешний каталог товаров (только чтение, без повторов).
type ProductFetcher interface {
	FetchAll(ctx context.Context) ([]domain.Product, error)
	FetchOne(ctx context.Context, id int64) (*domain.Product, error)
}

type EventProducer interface {
	WriteEvent(ctx context.Context, event *domain.Event) error
}

// ProductLister — источник полного каталога для контроллера списка.
type ProductLister interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
}

type ViewDropper interface {
	Drop(sessionID string)
}
