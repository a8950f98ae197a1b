package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockProductFetcher struct {
	mock.Mock
}

func (m *MockProductFetcher) FetchAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductFetcher) FetchOne(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	args := m.Called(ctx, ids)
	var res map[int64]domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		res = arg0.(map[int64]domain.Product)
	}
	return res, args.Error(1)
}

func (m *MockCacheRepository) SetProducts(ctx context.Context, products []domain.Product) error {
	return m.Called(ctx, products).Error(0)
}

func (m *MockCacheRepository) GetCatalog(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockCacheRepository) SetCatalog(ctx context.Context, products []domain.Product) error {
	return m.Called(ctx, products).Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

// recordingProducer запоминает опубликованные события.
type recordingProducer struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingProducer) WriteEvent(_ context.Context, event *domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)
	return p.err
}

func (p *recordingProducer) Events() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]domain.Event, len(p.events))
	copy(res, p.events)
	return res
}

// countingLister отдаёт фиксированный каталог и считает обращения.
type countingLister struct {
	mu       sync.Mutex
	products []domain.Product
	err      error
	calls    int
}

func (l *countingLister) ListAll(context.Context) ([]domain.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.products, nil
}

func (l *countingLister) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

type dropRecorder struct {
	dropped []string
}

func (d *dropRecorder) Drop(sessionID string) {
	d.dropped = append(d.dropped, sessionID)
}

func newProduct(id int64, title string, category string) domain.Product {
	return domain.Product{
		ID:                 id,
		Title:              title,
		Price:              decimal.NewFromInt(100),
		DiscountPercentage: decimal.NewFromInt(10),
		Category:           category,
	}
}

// fixtureCatalog — 14 товаров: 8 смартфонов и 6 ноутбуков.
func fixtureCatalog() []domain.Product {
	titles := []struct {
		title    string
		category string
	}{
		{"iPhone 9", domain.CategorySmartphones},
		{"iPhone X", domain.CategorySmartphones},
		{"Samsung Universe 9", domain.CategorySmartphones},
		{"OPPOF19", domain.CategorySmartphones},
		{"Huawei P30", domain.CategorySmartphones},
		{"MacBook Pro", domain.CategoryLaptops},
		{"Samsung Galaxy Book", domain.CategoryLaptops},
		{"Microsoft Surface Laptop 4", domain.CategoryLaptops},
		{"Infinix INBOOK", domain.CategoryLaptops},
		{"HP Pavilion 15-DK1056WM", domain.CategoryLaptops},
		{"Xiaomi Redmi Note", domain.CategorySmartphones},
		{"Pixel 7", domain.CategorySmartphones},
		{"ThinkPad X1", domain.CategoryLaptops},
		{"Nokia 3310", domain.CategorySmartphones},
	}

	res := make([]domain.Product, 0, len(titles))
	for i, t := range titles {
		res = append(res, newProduct(int64(i+1), t.title, t.category))
	}
	return res
}

func productIDs(products []domain.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
