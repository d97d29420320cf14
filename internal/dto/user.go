package dto

import "time"

type BalanceResponseDTO struct {
	Success bool    `json:"success" example:"true"`
	Balance float64 `json:"balance" example:"500.5"`
}

type SessionResponseDTO struct {
	Success   bool      `json:"success" example:"true"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at" example:"2026-10-15T12:15:00Z"`
}
