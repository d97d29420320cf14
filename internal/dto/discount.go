package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type DiscountValidateRequestDTO struct {
	Code  string          `json:"code" example:"SPRING10"`
	Total decimal.Decimal `json:"total" swaggertype:"number" example:"120.5"`
}

type DiscountValidateResponseDTO struct {
	Success        bool     `json:"success" example:"true"`
	Valid          bool     `json:"valid" example:"true"`
	DiscountAmount *float64 `json:"discount_amount,omitempty" example:"12.05"`
	FinalTotal     *float64 `json:"final_total,omitempty" example:"108.45"`
	Code           string   `json:"code,omitempty" example:"SPRING10"`
	Message        string   `json:"message,omitempty" example:"discount code has already been used"`
}

func NewDiscountOutcome(outcome *domain.DiscountOutcome) DiscountValidateResponseDTO {
	if !outcome.Valid {
		return DiscountValidateResponseDTO{Success: true, Valid: false, Message: outcome.Message}
	}
	// final is derived from the rounded amount so the two always add up to the total.
	rounded := outcome.DiscountAmount.Round(2)
	amount := Money(rounded)
	final := Money(outcome.DiscountAmount.Add(outcome.FinalTotal).Sub(rounded))
	return DiscountValidateResponseDTO{
		Success:        true,
		Valid:          true,
		DiscountAmount: &amount,
		FinalTotal:     &final,
		Code:           outcome.Code,
	}
}
