// Package pricing applies per-user reseller discounts to list prices.
package pricing

//go:generate mockgen -source=pricing.go -destination=mock_pricing.go -package=pricing

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Resolver looks up the reseller discount percent of a user for a product type.
type Resolver interface {
	GetDiscount(ctx context.Context, userID int64, productType string) (float64, error)
}

// Quote prices base at percent off. Amounts are left unrounded; a percent of
// zero or less yields the list price with no discount fields.
func Quote(base decimal.Decimal, percent float64) domain.Quote {
	if percent <= 0 {
		return domain.Quote{Price: base}
	}
	if percent > 100 {
		percent = 100
	}
	amount := base.Mul(decimal.NewFromFloat(percent)).Div(hundred)
	return domain.Quote{
		Price:           base.Sub(amount),
		OriginalPrice:   base,
		DiscountAmount:  amount,
		DiscountPercent: percent,
	}
}

type Adjuster struct {
	resolver Resolver
}

func New(resolver Resolver) *Adjuster {
	return &Adjuster{resolver: resolver}
}

// ForUser returns a pricer for one request. A zero userID prices everything at
// list price without consulting the resolver.
func (a *Adjuster) ForUser(userID int64) *Pricer {
	return &Pricer{
		resolver: a.resolver,
		userID:   userID,
		percents: make(map[string]float64),
	}
}

// Pricer memoizes the resolved percent per product type. It is not safe for
// concurrent use.
type Pricer struct {
	resolver Resolver
	userID   int64
	percents map[string]float64
}

func (p *Pricer) Quote(ctx context.Context, productType string, price float64) domain.Quote {
	return Quote(decimal.NewFromFloat(price), p.percent(ctx, productType))
}

func (p *Pricer) percent(ctx context.Context, productType string) float64 {
	if p.userID == 0 || p.resolver == nil {
		return 0
	}
	if percent, ok := p.percents[productType]; ok {
		return percent
	}
	percent, err := p.resolver.GetDiscount(ctx, p.userID, productType)
	if err != nil {
		zap.L().Error("reseller discount lookup failed, using list price",
			zap.Int64("user_id", p.userID), zap.String("product_type", productType), zap.Error(err))
		percent = 0
	}
	if percent < 0 {
		percent = 0
	}
	p.percents[productType] = percent
	return percent
}
