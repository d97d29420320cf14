package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DiscountKindPercent = "percent"
	DiscountKindFixed   = "fixed"
)

type DiscountCode struct {
	Code      string     `db:"code"`
	Kind      string     `db:"kind"`
	Value     float64    `db:"value"`
	MinTotal  float64    `db:"min_total"`
	UsesLeft  int        `db:"uses_left"`
	ExpiresAt *time.Time `db:"expires_at"`
}

// Apply returns the discount amount for total and the total left to pay.
// The amount never exceeds total and is never negative.
func (c DiscountCode) Apply(total decimal.Decimal) (amount, final decimal.Decimal) {
	switch c.Kind {
	case DiscountKindPercent:
		amount = total.Mul(decimal.NewFromFloat(c.Value)).Div(decimal.NewFromInt(100))
	default:
		amount = decimal.NewFromFloat(c.Value)
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	if amount.GreaterThan(total) {
		amount = total
	}
	return amount, total.Sub(amount)
}

type Redemption struct {
	ID             int             `db:"id"`
	Code           string          `db:"code"`
	UserID         int64           `db:"user_id"`
	Total          decimal.Decimal `db:"total"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	FinalTotal     decimal.Decimal `db:"final_total"`
	RedeemedAt     time.Time       `db:"redeemed_at"`
}

type DiscountOutcome struct {
	Valid          bool            `json:"valid"`
	Code           string          `json:"code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalTotal     decimal.Decimal `json:"final_total"`
	Message        string          `json:"message,omitempty"`
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
