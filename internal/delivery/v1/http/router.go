package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/storefront/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// BasePath — префикс маршрутов API
const BasePath = "/api/v1"

type routePaths struct {
	login    string
	products string
}

// RouterConfig — параметры маршрутизатора, не относящиеся к бизнес-логике
type RouterConfig struct {
	Cookie         CookieConfig
	SwaggerHost    string
	RequestTimeout time.Duration
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, sessionUC usecase.SessionUC, viewUC usecase.ListViewUC, cfg RouterConfig) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(requestLogger(r.logger))
	r.router.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.router.Get("/healthz", health)
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+cfg.SwaggerHost+"/swagger/doc.json"), // ссылка на JSON
	))

	paths := routePaths{
		login:    BasePath + "/login",
		products: BasePath + "/products",
	}
	validate := newValidator()

	r.router.Route(BasePath, func(v1 chi.Router) {
		v1.Use(sessionLoader(sessionUC, cfg.Cookie.Name, r.logger))

		sessionHandler := NewSessionHandler(sessionUC, cfg.Cookie, paths, r.logger)
		registerSessionRoutes(v1, sessionHandler)

		prHandler := NewProductHandler(catalogUC, validate, r.logger)
		viewHandler := NewViewHandler(viewUC, validate, r.logger)
		v1.Get("/categories", prHandler.listCategories)

		v1.Group(func(gated chi.Router) {
			gated.Use(requireLogin(paths.login))
			registerProductRoutes(gated, prHandler, viewHandler)
		})
	})
}

func registerSessionRoutes(router chi.Router, handler *SessionHandler) {
	router.Get("/", handler.loginPage)
	router.Get("/login", handler.loginPage)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler, viewHandler *ViewHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/view", viewHandler.getView)
		pr.Post("/view/filter", viewHandler.applyFilter)
		pr.Post("/view/page", viewHandler.setPage)
	})
	router.Get("/product/{id}", prHandler.getProduct)
}

// health — проверка живости для оркестратора
func health(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}
