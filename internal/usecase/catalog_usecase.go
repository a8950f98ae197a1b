package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	catalogFlightKey  = "catalog"
	backgroundTimeout = 500 * time.Millisecond
	flightTimeout     = 30 * time.Second
)

// CatalogUseCase отдаёт товары внешнего каталога: полный список, страницы с фильтром и отдельные товары.
// Кэш необязателен: при cacheRepo == nil каждый запрос идёт во внешний каталог.
type CatalogUseCase struct {
	fetcher   ProductFetcher
	cacheRepo CacheRepository
	producer  EventProducer
	logger    logger.Logger
	pageSize  int
	flight    singleflight.Group

	fetchTimeout time.Duration
}

func NewCatalogUC(
	fetcher ProductFetcher,
	cacheRepo CacheRepository,
	producer EventProducer,
	logger logger.Logger,
	pageSize int,
) *CatalogUseCase {
	if pageSize <= 0 {
		pageSize = domain.PageSize
	}

	return &CatalogUseCase{
		fetcher:   fetcher,
		cacheRepo: cacheRepo,
		producer:  producer,
		logger:    logger,
		pageSize:  pageSize,

		fetchTimeout: flightTimeout,
	}
}

// ListAll возвращает полный каталог. Одновременные промахи кэша объединяются в один запрос.
func (c *CatalogUseCase) ListAll(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListAll"

	if c.cacheRepo != nil {
		cached, err := c.cacheRepo.GetCatalog(ctx)
		if err != nil {
			c.logger.Warnf("Failed to read catalog from cache: %v", e.Wrap(op, err))
		} else if cached != nil {
			return cached, nil
		}
	}

	// Запрос выполняется вне контекста первого вызывающего, каждый ждёт только по своему ctx
	flightCh := c.flight.DoChan(catalogFlightKey, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		return c.fetcher.FetchAll(fetchCtx)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, e.Wrap(op, ctx.Err())
	case res = <-flightCh:
	}
	if res.Err != nil {
		return nil, e.Wrap(op, res.Err)
	}
	products := res.Val.([]domain.Product)

	// Фоновое добавление каталога и товаров в кэш
	if c.cacheRepo != nil {
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
			defer cancel()

			if err := c.cacheRepo.SetCatalog(bgCtx, products); err != nil {
				c.logger.Warnf("Failed to cache catalog in background: %v", e.Wrap(op, err))
			}
			if err := c.cacheRepo.SetProducts(bgCtx, products); err != nil {
				c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return products, nil
}

// GetProduct возвращает товар по идентификатору.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	if id <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductID)
	}

	if c.cacheRepo != nil {
		cached, err := c.cacheRepo.GetProducts(ctx, []int64{id})
		if err != nil {
			c.logger.Warnf("Failed to read product from cache: %v", e.Wrap(op, err))
		} else if p, ok := cached[id]; ok {
			return &p, nil
		}
	}

	product, err := c.fetcher.FetchOne(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if c.cacheRepo != nil {
		toCache := *product
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
			defer cancel()

			if err := c.cacheRepo.SetProducts(bgCtx, []domain.Product{toCache}); err != nil {
				c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return product, nil
}

// ViewProduct возвращает товар для страницы товара и публикует событие просмотра.
func (c *CatalogUseCase) ViewProduct(ctx context.Context, sessionID string, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.ViewProduct"

	product, err := c.GetProduct(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event := domain.NewEvent(uuid.NewString(), domain.EventProductViewed, sessionID, product.ID)
	if err := c.producer.WriteEvent(ctx, event); err != nil {
		c.logger.Warnf("Failed to publish product view: %v", e.Wrap(op, err))
	}

	return product, nil
}

// Query возвращает страницу каталога с фильтром по категории и названию.
// Номер страницы больше последней приводится к последней, пустой результат — страница 1.
func (c *CatalogUseCase) Query(ctx context.Context, req *ListProductsReq) (*ProductPage, error) {
	const op = "CatalogUseCase.Query"

	if !domain.IsKnownCategory(req.Category) {
		return nil, e.Wrap(op, e.ErrInvalidCategory)
	}

	page := req.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, e.Wrap(op, e.ErrInvalidPage)
	}

	all, err := c.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := FilterProducts(all, req.Category, req.Search)
	page = ClampPage(page, len(filtered), c.pageSize)

	return NewProductPage(
		Paginate(filtered, page, c.pageSize),
		page,
		c.pageSize,
		PageCount(len(filtered), c.pageSize),
		len(filtered),
	), nil
}

// Categories возвращает меню категорий.
func (c *CatalogUseCase) Categories() []domain.Category {
	return domain.Categories()
}
