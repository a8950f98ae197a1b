package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type CatalogUC interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ViewProduct(ctx context.Context, sessionID string, id int64) (*domain.Product, error)
	Query(ctx context.Context, req *ListProductsReq) (*ProductPage, error)
	Categories() []domain.Category
}

type SessionUC interface {
	IsAuthenticated(ctx context.Context, sessionID string) (bool, error)
	Login(ctx context.Context, sessionID string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type ListViewUC interface {
	View(ctx context.Context, sessionID string) (*ListView, error)
	ApplyFilter(ctx context.Context, sessionID string, req *ApplyFilterReq) (*ListView, error)
	SetPage(ctx context.Context, sessionID string, page int) (*ListView, error)
	Drop(sessionID string)
}
