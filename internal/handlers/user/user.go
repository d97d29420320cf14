package user

//go:generate mockgen -source=user.go -destination=mock_user.go -package=user

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/storefront/internal/dto"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int64) (float64, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	A user without a stored row has a zero balance.
//	@Tags			Пользователь
//	@Security		TelegramInitData
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	balance, err := h.userService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Success: true, Balance: balance})
}
