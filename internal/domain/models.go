package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultHoldTTL is how long a basket hold stays live after it was created.
// Hold creation and the basket read path must agree on it.
const DefaultHoldTTL = 15 * time.Minute

const DefaultEmoji = "📦"

type Product struct {
	ID          int     `db:"id"`
	City        string  `db:"city"`
	District    string  `db:"district"`
	ProductType string  `db:"product_type"`
	Size        string  `db:"size"`
	Price       float64 `db:"price"`
	Description string  `db:"original_text"`
	Available   int     `db:"available"`
	Reserved    int     `db:"reserved"`
}

// Sellable is the quantity still offerable to new shoppers.
func (p Product) Sellable() int {
	if p.Reserved >= p.Available {
		return 0
	}
	return p.Available - p.Reserved
}

func (p Product) CanReserve() bool {
	return p.Sellable() > 0
}

type Media struct {
	ProductID int    `db:"product_id"`
	MediaType string `db:"media_type"`
	FileID    string `db:"file_id"`
}

type ProductFilter struct {
	City        string
	District    string
	ProductType string
	Limit       int
}

type User struct {
	ID      int64   `db:"user_id"`
	Basket  string  `db:"basket"`
	Balance float64 `db:"balance"`
}

// Quote is a product price after reseller pricing has been applied.
// OriginalPrice and DiscountPercent are only meaningful when Discounted is true.
type Quote struct {
	Price           decimal.Decimal
	OriginalPrice   decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountPercent float64
}

func (q Quote) Discounted() bool {
	return q.DiscountPercent > 0
}

type ProductView struct {
	Product
	Emoji    string
	Quote    Quote
	InStock  int
	HasMedia bool
	// MediaType of the first attached media, listing only.
	MediaType string
	Media     []Media
}

type BasketItem struct {
	ProductID   int
	ProductType string
	Size        string
	City        string
	District    string
	Emoji       string
	Quote       Quote
}

type BasketView struct {
	Items []BasketItem
	Total decimal.Decimal
}

type City struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type District struct {
	ID     string `db:"id"`
	CityID string `db:"city_id"`
	Name   string `db:"name"`
}

type ProductType struct {
	Name  string `db:"name"`
	Emoji string `db:"emoji"`
}
