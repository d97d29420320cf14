package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/events"
	"github.com/GlebRadaev/storefront/internal/idempotency"
	"github.com/GlebRadaev/storefront/internal/repo"
	"github.com/GlebRadaev/storefront/internal/service/authservice"
	"github.com/GlebRadaev/storefront/internal/service/basketservice"
	"github.com/GlebRadaev/storefront/internal/service/catalogservice"
	"github.com/GlebRadaev/storefront/internal/service/discountservice"
	"github.com/GlebRadaev/storefront/internal/service/pricing"
	"github.com/GlebRadaev/storefront/internal/service/userservice"
	"github.com/GlebRadaev/storefront/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		ProductRepo:  catalogservice.NewMockProductRepo(ctrl),
		StockRepo:    basketservice.NewMockProductRepo(ctrl),
		BasketRepo:   basketservice.NewMockRepo(ctrl),
		UserRepo:     userservice.NewMockRepo(ctrl),
		AuthRepo:     authservice.NewMockRepo(ctrl),
		ResellerRepo: pricing.NewMockResolver(ctrl),
		DiscountRepo: discountservice.NewMockRepo(ctrl),
	}

	services := New(repos, Options{
		Reference:  domain.NewReference(nil, nil, nil),
		Store:      idempotency.Nop{},
		Publisher:  events.Nop{},
		JWTService: auth.NewJWTService("secret"),
		HoldTTL:    10 * time.Minute,
		SessionTTL: time.Hour,
	})

	assert.IsType(t, &catalogservice.Service{}, services.CatalogService)
	assert.IsType(t, &basketservice.Service{}, services.BasketService)
	assert.IsType(t, &discountservice.Service{}, services.DiscountService)
	assert.IsType(t, &userservice.Service{}, services.UserService)
	assert.IsType(t, &authservice.Service{}, services.SessionService)
}
