package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/storefront/docs"
	"github.com/GlebRadaev/storefront/internal/handlers/assets"
	baskethandlers "github.com/GlebRadaev/storefront/internal/handlers/basket"
	cataloghandlers "github.com/GlebRadaev/storefront/internal/handlers/catalog"
	discounthandlers "github.com/GlebRadaev/storefront/internal/handlers/discount"
	sessionhandlers "github.com/GlebRadaev/storefront/internal/handlers/session"
	userhandlers "github.com/GlebRadaev/storefront/internal/handlers/user"
	"github.com/GlebRadaev/storefront/internal/service"
	"github.com/GlebRadaev/storefront/pkg/auth"
)

type CatalogHandler interface {
	GetCities(w http.ResponseWriter, r *http.Request)
	GetDistricts(w http.ResponseWriter, r *http.Request)
	GetProductTypes(w http.ResponseWriter, r *http.Request)
	GetProducts(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
}

type BasketHandler interface {
	GetBasket(w http.ResponseWriter, r *http.Request)
	ClearBasket(w http.ResponseWriter, r *http.Request)
	AddToBasket(w http.ResponseWriter, r *http.Request)
}

type DiscountHandler interface {
	Validate(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	StartSession(w http.ResponseWriter, r *http.Request)
}

type AssetHandler interface {
	ServeMedia(w http.ResponseWriter, r *http.Request)
	ServeStatic(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CatalogHandler  CatalogHandler
	BasketHandler   BasketHandler
	DiscountHandler DiscountHandler
	UserHandler     UserHandler
	SessionHandler  SessionHandler
	AssetHandler    AssetHandler

	authenticator *auth.Authenticator
	corsOrigins   []string
}

type Options struct {
	Authenticator *auth.Authenticator
	MediaDir      string
	StaticDir     string
	CORSOrigins   []string
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		CatalogHandler:  cataloghandlers.New(s.CatalogService),
		BasketHandler:   baskethandlers.New(s.BasketService),
		DiscountHandler: discounthandlers.New(s.DiscountService),
		UserHandler:     userhandlers.New(s.UserService),
		SessionHandler:  sessionhandlers.New(s.SessionService),
		AssetHandler:    assets.New(opts.MediaDir, opts.StaticDir),
		authenticator:   opts.Authenticator,
		corsOrigins:     opts.CORSOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", auth.InitDataHeader, discounthandlers.IdempotencyKeyHeader},
			ExposedHeaders: []string{"Authorization"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/media/{productID}/{filename}", h.AssetHandler.ServeMedia)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cities", h.CatalogHandler.GetCities)
		r.Get("/districts/{cityID}", h.CatalogHandler.GetDistricts)
		r.Get("/product-types", h.CatalogHandler.GetProductTypes)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticator.Optional)
			r.Get("/products", h.CatalogHandler.GetProducts)
			r.Get("/product/{productID}", h.CatalogHandler.GetProduct)
		})

		r.With(h.authenticator.InitDataRequired).Post("/auth/session", h.SessionHandler.StartSession)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticator.Required)
			r.Route("/basket", func(r chi.Router) {
				r.Get("/", h.BasketHandler.GetBasket)
				r.Post("/clear", h.BasketHandler.ClearBasket)
				r.Post("/add", h.BasketHandler.AddToBasket)
			})
			r.Post("/discount/validate", h.DiscountHandler.Validate)
			r.Get("/user/balance", h.UserHandler.GetBalance)
		})
	})

	r.Get("/*", h.AssetHandler.ServeStatic)

	return r
}
