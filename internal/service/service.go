package service

import (
	"time"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/events"
	"github.com/GlebRadaev/storefront/internal/handlers/basket"
	"github.com/GlebRadaev/storefront/internal/handlers/catalog"
	"github.com/GlebRadaev/storefront/internal/handlers/discount"
	"github.com/GlebRadaev/storefront/internal/handlers/session"
	"github.com/GlebRadaev/storefront/internal/handlers/user"
	"github.com/GlebRadaev/storefront/internal/idempotency"
	"github.com/GlebRadaev/storefront/internal/repo"
	"github.com/GlebRadaev/storefront/internal/service/authservice"
	"github.com/GlebRadaev/storefront/internal/service/basketservice"
	"github.com/GlebRadaev/storefront/internal/service/catalogservice"
	"github.com/GlebRadaev/storefront/internal/service/discountservice"
	"github.com/GlebRadaev/storefront/internal/service/pricing"
	"github.com/GlebRadaev/storefront/internal/service/userservice"
	pkgauth "github.com/GlebRadaev/storefront/pkg/auth"
)

type Options struct {
	Reference  *domain.Reference
	Store      idempotency.Store
	Publisher  events.Publisher
	JWTService pkgauth.JWTServiceInterface
	HoldTTL    time.Duration
	SessionTTL time.Duration
}

type Services struct {
	CatalogService  catalog.Service
	BasketService   basket.Service
	DiscountService discount.Service
	UserService     user.Service
	SessionService  session.Service
}

func New(repo *repo.Repositories, opts Options) *Services {
	adjuster := pricing.New(repo.ResellerRepo)

	return &Services{
		CatalogService:  catalogservice.New(repo.ProductRepo, adjuster, opts.Reference),
		BasketService:   basketservice.New(repo.BasketRepo, repo.StockRepo, adjuster, opts.Reference, opts.Publisher, opts.HoldTTL),
		DiscountService: discountservice.New(repo.DiscountRepo, opts.Store, opts.Publisher),
		UserService:     userservice.New(repo.UserRepo),
		SessionService:  authservice.New(repo.AuthRepo, opts.JWTService, opts.SessionTTL),
	}
}
