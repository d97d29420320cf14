// Package events publishes domain events about holds and discount redemptions.
package events

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventBasketCleared    = "basket.cleared"
	EventHoldAdded        = "basket.hold_added"
	EventHoldsReclaimed   = "holds.reclaimed"
	EventDiscountRedeemed = "discount.redeemed"
)

const producerName = "storefront-api"

type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type BasketCleared struct {
	UserID   int64 `json:"user_id"`
	Released int   `json:"released"`
}

type HoldAdded struct {
	UserID    int64     `json:"user_id"`
	ProductID int       `json:"product_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Released  int       `json:"released"`
}

type HoldsReclaimed struct {
	UserID   int64 `json:"user_id"`
	Released int   `json:"released"`
}

type DiscountRedeemed struct {
	UserID         int64           `json:"user_id"`
	Code           string          `json:"code"`
	Total          decimal.Decimal `json:"total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}

// Publisher delivers events in the background. Publish never blocks the caller
// and never fails it; delivery problems are logged.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any)
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, any) {}
