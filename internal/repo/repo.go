package repo

import (
	"context"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
	"github.com/GlebRadaev/storefront/internal/reclaimer"
	basketrepo "github.com/GlebRadaev/storefront/internal/repo/basket-repo"
	discountrepo "github.com/GlebRadaev/storefront/internal/repo/discount-repo"
	productrepo "github.com/GlebRadaev/storefront/internal/repo/product-repo"
	referencerepo "github.com/GlebRadaev/storefront/internal/repo/reference-repo"
	resellerrepo "github.com/GlebRadaev/storefront/internal/repo/reseller-repo"
	userrepo "github.com/GlebRadaev/storefront/internal/repo/user-repo"
	"github.com/GlebRadaev/storefront/internal/service/authservice"
	"github.com/GlebRadaev/storefront/internal/service/basketservice"
	"github.com/GlebRadaev/storefront/internal/service/catalogservice"
	"github.com/GlebRadaev/storefront/internal/service/discountservice"
	"github.com/GlebRadaev/storefront/internal/service/pricing"
	"github.com/GlebRadaev/storefront/internal/service/userservice"
)

type ReferenceLoader interface {
	Load(ctx context.Context) (*domain.Reference, error)
}

type Repositories struct {
	ProductRepo   catalogservice.ProductRepo
	StockRepo     basketservice.ProductRepo
	BasketRepo    basketservice.Repo
	HoldRepo      reclaimer.Repo
	UserRepo      userservice.Repo
	AuthRepo      authservice.Repo
	ResellerRepo  pricing.Resolver
	DiscountRepo  discountservice.Repo
	ReferenceRepo ReferenceLoader
}

// New builds every repository over conn. conn must route queries into the
// transaction opened by txManager for multi-statement operations to be atomic.
func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	productRepo := productrepo.New(conn)
	basketRepo := basketrepo.New(conn, txManager)
	userRepo := userrepo.New(conn)

	return &Repositories{
		ProductRepo:   productRepo,
		StockRepo:     productRepo,
		BasketRepo:    basketRepo,
		HoldRepo:      basketRepo,
		UserRepo:      userRepo,
		AuthRepo:      userRepo,
		ResellerRepo:  resellerrepo.New(conn),
		DiscountRepo:  discountrepo.New(conn, txManager),
		ReferenceRepo: referencerepo.New(conn),
	}
}
