package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found or out of stock")
	ErrOutOfStock      = errors.New("product out of stock")
)

var (
	ErrUnknownCode    = errors.New("invalid discount code")
	ErrCodeExpired    = errors.New("discount code has expired")
	ErrCodeUsed       = errors.New("discount code has already been used")
	ErrMinTotalNotMet = errors.New("order total is below the minimum for this code")
	ErrCodeRequired   = errors.New("discount code is required")
)
