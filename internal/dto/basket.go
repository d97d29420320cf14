package dto

import (
	"time"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type BasketItemDTO struct {
	ProductID int    `json:"product_id" example:"7"`
	Type      string `json:"type" example:"tea"`
	Size      string `json:"size" example:"M"`
	pricing
	City     string `json:"city" example:"Berlin"`
	District string `json:"district" example:"Mitte"`
	Emoji    string `json:"emoji" example:"🍵"`
}

type BasketResponseDTO struct {
	Success bool            `json:"success" example:"true"`
	Basket  []BasketItemDTO `json:"basket"`
	Total   float64         `json:"total" example:"38"`
}

type AddToBasketRequestDTO struct {
	ProductID int `json:"product_id" example:"7"`
}

type AddToBasketResponseDTO struct {
	Success   bool      `json:"success" example:"true"`
	ExpiresAt time.Time `json:"expires_at" example:"2026-10-15T12:15:00Z"`
}

type SuccessDTO struct {
	Success bool `json:"success" example:"true"`
}

func NewBasket(view *domain.BasketView) BasketResponseDTO {
	resp := BasketResponseDTO{
		Success: true,
		Basket:  make([]BasketItemDTO, 0, len(view.Items)),
		Total:   Money(view.Total),
	}
	for _, item := range view.Items {
		resp.Basket = append(resp.Basket, BasketItemDTO{
			ProductID: item.ProductID,
			Type:      item.ProductType,
			Size:      item.Size,
			pricing:   newPricing(item.Quote),
			City:      item.City,
			District:  item.District,
			Emoji:     item.Emoji,
		})
	}
	return resp
}
