package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/debounce"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// ListController хранит состояние списка товаров одной сессии: полный каталог,
// загруженный один раз, ввод пользователя и отфильтрованный набор.
// Изменение категории или поиска сразу сбрасывает страницу на первую, а сам пересчёт
// выполняется с задержкой: из серии быстрых изменений применяется только последнее.
type ListController struct {
	mu        sync.Mutex
	catalog   ProductLister
	debouncer *debounce.Debouncer
	pageSize  int

	all      []domain.Product
	filtered []domain.Product
	state    domain.FilterState
	loaded   bool
	gen      uint64
	revision uint64
}

func NewListController(catalog ProductLister, pageSize int, delay time.Duration) *ListController {
	if pageSize <= 0 {
		pageSize = domain.PageSize
	}

	return &ListController{
		catalog:   catalog,
		debouncer: debounce.New(delay),
		pageSize:  pageSize,
		state:     domain.NewFilterState(),
	}
}

// Load загружает полный каталог при первом вызове. При ошибке контроллер остаётся
// незагруженным, и следующий вызов повторит запрос.
func (l *ListController) Load(ctx context.Context) error {
	const op = "ListController.Load"

	l.mu.Lock()
	loaded := l.loaded
	l.mu.Unlock()
	if loaded {
		return nil
	}

	products, err := l.catalog.ListAll(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return nil
	}

	l.all = products
	l.filtered = FilterProducts(products, l.state.Category, l.state.Search)
	l.state.Page = ClampPage(l.state.Page, len(l.filtered), l.pageSize)
	l.loaded = true

	return nil
}

// SetCategory меняет категорию, сбрасывает страницу и планирует пересчёт.
func (l *ListController) SetCategory(category string) {
	l.mu.Lock()
	l.state.Category = category
	l.state.Page = 1
	l.gen++
	gen, search := l.gen, l.state.Search
	l.mu.Unlock()

	l.debouncer.Trigger(func() {
		l.recompute(gen, category, search)
	})
}

// SetSearch меняет строку поиска, сбрасывает страницу и планирует пересчёт.
func (l *ListController) SetSearch(search string) {
	l.mu.Lock()
	l.state.Search = search
	l.state.Page = 1
	l.gen++
	gen, category := l.gen, l.state.Category
	l.mu.Unlock()

	l.debouncer.Trigger(func() {
		l.recompute(gen, category, search)
	})
}

// SetPage переключает страницу. Номер за пределами текущего набора приводится к ближайшей странице.
func (l *ListController) SetPage(page int) error {
	if page < 1 {
		return e.Wrap("ListController.SetPage", e.ErrInvalidPage)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.Page = ClampPage(page, len(l.filtered), l.pageSize)
	return nil
}

// Flush немедленно выполняет отложенный пересчёт.
func (l *ListController) Flush() {
	l.debouncer.Flush()
}

// View возвращает снимок текущей страницы.
func (l *ListController) View() ListView {
	l.mu.Lock()
	defer l.mu.Unlock()

	return ListView{
		Products:   Paginate(l.filtered, l.state.Page, l.pageSize),
		Filter:     l.state,
		PageSize:   l.pageSize,
		TotalPages: PageCount(len(l.filtered), l.pageSize),
		TotalItems: len(l.filtered),
		Loaded:     l.loaded,
		Pending:    l.debouncer.Pending(),
		Revision:   l.revision,
	}
}

// Close отменяет отложенный пересчёт.
func (l *ListController) Close() {
	l.debouncer.Stop()
}

// recompute применяет фильтр, если с момента планирования ввод не менялся.
func (l *ListController) recompute(gen uint64, category string, search string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen || !l.loaded {
		return
	}

	l.filtered = FilterProducts(l.all, category, search)
	l.state.Page = ClampPage(l.state.Page, len(l.filtered), l.pageSize)
	l.revision++
}
