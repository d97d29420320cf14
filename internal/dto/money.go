package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/storefront/internal/domain"
)

// Money rounds an amount to cents for presentation.
func Money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// pricing is the price block shared by listings, details and basket items.
// OriginalPrice and DiscountPercent are present only for discounted quotes.
type pricing struct {
	Price           float64  `json:"price" example:"18"`
	OriginalPrice   *float64 `json:"original_price,omitempty" example:"20"`
	DiscountPercent *float64 `json:"discount_percent,omitempty" example:"10"`
}

func newPricing(q domain.Quote) pricing {
	p := pricing{Price: Money(q.Price)}
	if q.Discounted() {
		original := Money(q.OriginalPrice)
		percent := q.DiscountPercent
		p.OriginalPrice = &original
		p.DiscountPercent = &percent
	}
	return p
}
