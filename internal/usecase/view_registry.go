package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// ViewRegistry держит по одному ListController на сессию и создаёт их по первому обращению.
type ViewRegistry struct {
	mu       sync.Mutex
	views    map[string]*ListController
	lastSeen map[string]time.Time
	catalog  ProductLister
	pageSize int
	delay    time.Duration
	logger   logger.Logger
	now      func() time.Time
}

func NewViewRegistry(catalog ProductLister, pageSize int, delay time.Duration, logger logger.Logger) *ViewRegistry {
	return &ViewRegistry{
		views:    make(map[string]*ListController),
		lastSeen: make(map[string]time.Time),
		catalog:  catalog,
		pageSize: pageSize,
		delay:    delay,
		logger:   logger,
		now:      time.Now,
	}
}

// View возвращает текущий снимок списка сессии, при необходимости загружая каталог.
func (r *ViewRegistry) View(ctx context.Context, sessionID string) (*ListView, error) {
	const op = "ViewRegistry.View"

	ctrl, err := r.loaded(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	view := ctrl.View()
	return &view, nil
}

// ApplyFilter применяет изменение ввода. Пересчёт выполнится после паузы,
// возвращаемый снимок уже содержит новый ввод и первую страницу.
func (r *ViewRegistry) ApplyFilter(ctx context.Context, sessionID string, req *ApplyFilterReq) (*ListView, error) {
	const op = "ViewRegistry.ApplyFilter"

	ctrl, err := r.loaded(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Category != nil {
		ctrl.SetCategory(*req.Category)
	}
	if req.Search != nil {
		ctrl.SetSearch(*req.Search)
	}

	view := ctrl.View()
	return &view, nil
}

// SetPage переключает страницу списка сессии.
func (r *ViewRegistry) SetPage(ctx context.Context, sessionID string, page int) (*ListView, error) {
	const op = "ViewRegistry.SetPage"

	ctrl, err := r.loaded(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := ctrl.SetPage(page); err != nil {
		return nil, e.Wrap(op, err)
	}

	view := ctrl.View()
	return &view, nil
}

// Drop удаляет состояние списка сессии и отменяет отложенный пересчёт.
func (r *ViewRegistry) Drop(sessionID string) {
	r.mu.Lock()
	ctrl, ok := r.views[sessionID]
	delete(r.views, sessionID)
	delete(r.lastSeen, sessionID)
	r.mu.Unlock()

	if ok {
		ctrl.Close()
		r.logger.Debugf("list view dropped, session: %s", sessionID)
	}
}

// EvictIdle удаляет списки сессий, к которым не обращались дольше idle, и возвращает их число.
func (r *ViewRegistry) EvictIdle(idle time.Duration) int {
	deadline := r.now().Add(-idle)

	r.mu.Lock()
	var evicted []*ListController
	for id, seen := range r.lastSeen {
		if seen.After(deadline) {
			continue
		}
		evicted = append(evicted, r.views[id])
		delete(r.views, id)
		delete(r.lastSeen, id)
	}
	r.mu.Unlock()

	for _, ctrl := range evicted {
		ctrl.Close()
	}

	return len(evicted)
}

// Len возвращает число активных списков.
func (r *ViewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Close останавливает все отложенные пересчёты.
func (r *ViewRegistry) Close() error {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*ListController)
	r.lastSeen = make(map[string]time.Time)
	r.mu.Unlock()

	for _, ctrl := range views {
		ctrl.Close()
	}

	return nil
}

func (r *ViewRegistry) loaded(ctx context.Context, sessionID string) (*ListController, error) {
	ctrl := r.controller(sessionID)
	if err := ctrl.Load(ctx); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func (r *ViewRegistry) controller(sessionID string) *ListController {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctrl, ok := r.views[sessionID]
	if !ok {
		ctrl = NewListController(r.catalog, r.pageSize, r.delay)
		r.views[sessionID] = ctrl
	}
	r.lastSeen[sessionID] = r.now()

	return ctrl
}
