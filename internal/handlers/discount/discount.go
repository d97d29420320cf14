package discount

//go:generate mockgen -source=discount.go -destination=mock_discount.go -package=discount

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/dto"
	"github.com/GlebRadaev/storefront/internal/idempotency"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/utils"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Service interface {
	Validate(ctx context.Context, userID int64, code string, total decimal.Decimal, idempotencyKey string) (*domain.DiscountOutcome, error)
}

type DiscountHandler struct {
	discountService Service
}

func New(discountService Service) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
	}
}

// Validate godoc
//
//	@Summary		Validate and redeem a discount code
//	@Description	Redeems one use of the code against the basket total. A rejected code is still a 200 with valid=false and the reason. Repeating a request with the same Idempotency-Key returns the first outcome.
//	@Tags			Скидки
//	@Security		TelegramInitData
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string							false	"Client request key"
//	@Param			request			body		dto.DiscountValidateRequestDTO	true	"Code and basket total"
//	@Success		200				{object}	dto.DiscountValidateResponseDTO	"Outcome"
//	@Failure		400				{object}	utils.Response					"Invalid request body"
//	@Failure		401				{object}	utils.Response					"User not authorized"
//	@Failure		409				{object}	utils.Response					"Same request still in progress"
//	@Failure		500				{object}	utils.Response					"Internal server error"
//	@Router			/api/discount/validate [post]
func (h *DiscountHandler) Validate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.DiscountValidateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Total.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "total must not be negative")
		return
	}

	outcome, err := h.discountService.Validate(r.Context(), userID, req.Code, req.Total, r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		switch {
		case errors.Is(err, idempotency.ErrInProgress):
			utils.RespondWithError(w, http.StatusConflict, "request with this idempotency key is in progress")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDiscountOutcome(outcome))
}
