package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "storefront_session"

type stubFetcher struct {
	mu       sync.Mutex
	products []domain.Product
	fail     bool
}

func (f *stubFetcher) FetchAll(context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, e.ErrFetchFailed
	}
	return f.products, nil
}

func (f *stubFetcher) FetchOne(_ context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, e.ErrFetchFailed
	}
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (f *stubFetcher) setFail(v bool) {
	f.mu.Lock()
	f.fail = v
	f.mu.Unlock()
}

type nopProducer struct{}

func (nopProducer) WriteEvent(context.Context, *domain.Event) error { return nil }

func stubCatalog() []domain.Product {
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
		{"Perfume Oil", domain.CategoryFragrances},
	}

	res := make([]domain.Product, 0, len(titles))
	for i, t := range titles {
		res = append(res, domain.Product{
			ID:                 int64(i + 1),
			Title:              t.title,
			Price:              decimal.NewFromInt(100),
			DiscountPercentage: decimal.NewFromInt(20),
			Category:           t.category,
			Images:             []string{"1.jpg"},
		})
	}
	return res
}

type testEnv struct {
	server  *httptest.Server
	client  *http.Client
	fetcher *stubFetcher
	views   *usecase.ViewRegistry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.NewNop()
	fetcher := &stubFetcher{products: stubCatalog()}
	catalogUC := usecase.NewCatalogUC(fetcher, nil, nopProducer{}, log, domain.PageSize)
	views := usecase.NewViewRegistry(catalogUC, domain.PageSize, 100*time.Millisecond, log)
	sessionUC := usecase.NewSessionUC(memory.NewSessionRepo(), views, nopProducer{}, log)

	r := chi.NewRouter()
	NewRouter(r, log).Init(catalogUC, sessionUC, views, RouterConfig{
		Cookie:         CookieConfig{Name: testCookie, TTL: time.Hour},
		SwaggerHost:    "localhost:8080",
		RequestTimeout: 5 * time.Second,
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	t.Cleanup(func() { _ = views.Close() })

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testEnv{server: srv, client: client, fetcher: fetcher, views: views}
}

func (env *testEnv) do(t *testing.T, method string, path string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, env.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := env.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })

	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	return v
}

func (env *testEnv) login(t *testing.T) {
	t.Helper()

	res := env.do(t, http.MethodPost, BasePath+"/login", nil)
	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, BasePath+"/products", res.Header.Get("Location"))
}

func TestRouter_GatedRoutesRedirectToLogin(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/products", "/products/view", "/product/1"} {
		res := env.do(t, http.MethodGet, BasePath+path, nil)
		assert.Equal(t, http.StatusSeeOther, res.StatusCode, path)
		assert.Equal(t, BasePath+"/login", res.Header.Get("Location"), path)

		body := decode[SessionResponse](t, res)
		assert.False(t, body.LoggedIn)
		assert.Equal(t, "Please login to view products.", body.Message)
	}
}

func TestRouter_LoginFlow(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodGet, BasePath+"/", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.False(t, decode[SessionResponse](t, res).LoggedIn)

	env.login(t)

	for _, path := range []string{"/", "/login"} {
		res = env.do(t, http.MethodGet, BasePath+path, nil)
		assert.Equal(t, http.StatusSeeOther, res.StatusCode, path)
		assert.Equal(t, BasePath+"/products", res.Header.Get("Location"), path)
	}

	res = env.do(t, http.MethodGet, BasePath+"/products", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = env.do(t, http.MethodPost, BasePath+"/logout", nil)
	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, BasePath+"/login", res.Header.Get("Location"))

	res = env.do(t, http.MethodGet, BasePath+"/products", nil)
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
}

func TestRouter_ListProducts(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	res := env.do(t, http.MethodGet, BasePath+"/products", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	page := decode[ProductPageResponse](t, res)
	assert.Len(t, page.Products, 6)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 8, page.TotalItems)
	assert.Equal(t, "80.00", page.Products[0].DiscountedPrice)

	res = env.do(t, http.MethodGet, BasePath+"/products?category=laptops&search=SAMSUNG", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	page = decode[ProductPageResponse](t, res)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Samsung Galaxy Book", page.Products[0].Title)

	res = env.do(t, http.MethodGet, BasePath+"/products?page=9", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	page = decode[ProductPageResponse](t, res)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Products, 2)

	for _, query := range []string{"?page=-1", "?page=abc", "?category=furniture"} {
		res = env.do(t, http.MethodGet, BasePath+"/products"+query, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, query)
	}
}

func TestRouter_FetchFailure(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	env.fetcher.setFail(true)

	res := env.do(t, http.MethodGet, BasePath+"/products", nil)
	require.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.Equal(t, "Error fetching data. Please try again later.", decode[ErrorResponse](t, res).Message)

	res = env.do(t, http.MethodGet, BasePath+"/product/1", nil)
	require.Equal(t, http.StatusBadGateway, res.StatusCode)
}

func TestRouter_ProductDetail(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	res := env.do(t, http.MethodGet, BasePath+"/product/6", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	product := decode[ProductResponse](t, res)
	assert.Equal(t, "MacBook Pro", product.Title)
	assert.Equal(t, "100", product.Price)
	assert.Equal(t, "80.00", product.DiscountedPrice)
	assert.Equal(t, []string{"1.jpg"}, product.Images)

	res = env.do(t, http.MethodGet, BasePath+"/product/999", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Product not found", decode[ErrorResponse](t, res).Message)

	res = env.do(t, http.MethodGet, BasePath+"/product/abc", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRouter_ListViewDebounce(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	res := env.do(t, http.MethodPost, BasePath+"/products/view/page", SetPageRequest{Page: 2})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 2, decode[ListViewResponse](t, res).Page)

	for _, term := range []string{"s", "sa", "samsung"} {
		res = env.do(t, http.MethodPost, BasePath+"/products/view/filter", map[string]string{"search": term})
		require.Equal(t, http.StatusAccepted, res.StatusCode)
		view := decode[ListViewResponse](t, res)
		assert.Equal(t, 1, view.Page)
		assert.Equal(t, term, view.Search)
	}

	var view ListViewResponse
	require.Eventually(t, func() bool {
		res := env.do(t, http.MethodGet, BasePath+"/products/view", nil)
		view = decode[ListViewResponse](t, res)
		return !view.Pending
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, uint64(1), view.Revision)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 1, view.Page)

	res = env.do(t, http.MethodPost, BasePath+"/products/view/filter", map[string]string{"category": "furniture"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = env.do(t, http.MethodPost, BasePath+"/products/view/page", SetPageRequest{Page: 0})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, e.ErrInvalidPage.Error(), decode[ErrorResponse](t, res).Message)
}

func TestRouter_LogoutDropsListView(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	res := env.do(t, http.MethodGet, BasePath+"/products/view", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, 1, env.views.Len())

	res = env.do(t, http.MethodPost, BasePath+"/logout", nil)
	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, 0, env.views.Len())
}

func TestRouter_PublicRoutes(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodGet, BasePath+"/categories", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	categories := decode[[]CategoryResponse](t, res)
	require.Len(t, categories, 6)
	assert.Equal(t, "smartphones", categories[0].Slug)

	res = env.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", decode[HealthResponse](t, res).Status)
	assert.True(t, strings.HasPrefix(res.Header.Get("Content-Type"), "application/json"))
}

func TestRouter_LoginIssuesFreshIDForUnknownCookie(t *testing.T) {
	env := newTestEnv(t)

	req, err := http.NewRequest(http.MethodPost, env.server.URL+BasePath+"/login", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "attacker-chosen"})

	res, err := (&http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}).Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusSeeOther, res.StatusCode)

	var issued string
	for _, c := range res.Cookies() {
		if c.Name == testCookie {
			issued = c.Value
		}
	}
	assert.NotEmpty(t, issued)
	assert.NotEqual(t, "attacker-chosen", issued)
}
