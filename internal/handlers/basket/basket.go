package basket

//go:generate mockgen -source=basket.go -destination=mock_basket.go -package=basket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/dto"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/utils"
)

type Service interface {
	Get(ctx context.Context, userID int64) (*domain.BasketView, error)
	Clear(ctx context.Context, userID int64) error
	Add(ctx context.Context, userID int64, productID int) (time.Time, error)
}

type BasketHandler struct {
	basketService Service
}

func New(basketService Service) *BasketHandler {
	return &BasketHandler{
		basketService: basketService,
	}
}

// GetBasket godoc
//
//	@Summary		Get the basket
//	@Description	Live holds of the caller priced for the caller. Expired holds are not shown.
//	@Tags			Корзина
//	@Security		TelegramInitData
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BasketResponseDTO	"Basket and its total"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/basket [get]
func (h *BasketHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	view, err := h.basketService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBasket(view))
}

// ClearBasket godoc
//
//	@Summary		Clear the basket
//	@Description	Releases every hold of the caller, live or expired, and empties the basket.
//	@Tags			Корзина
//	@Security		TelegramInitData
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SuccessDTO	"Basket cleared"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/basket/clear [post]
func (h *BasketHandler) ClearBasket(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	if err := h.basketService.Clear(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessDTO{Success: true})
}

// AddToBasket godoc
//
//	@Summary		Hold one unit of a product
//	@Description	Reserves one unit for the caller until expires_at. Expired holds of the caller are released first.
//	@Tags			Корзина
//	@Security		TelegramInitData
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddToBasketRequestDTO	true	"Product to hold"
//	@Success		200		{object}	dto.AddToBasketResponseDTO	"Hold created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Product not found or out of stock"
//	@Failure		409		{object}	utils.Response				"Product out of stock"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/basket/add [post]
func (h *BasketHandler) AddToBasket(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.AddToBasketRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expiresAt, err := h.basketService.Add(r.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Product not found or out of stock")
		case errors.Is(err, domain.ErrOutOfStock):
			utils.RespondWithError(w, http.StatusConflict, "Product out of stock")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddToBasketResponseDTO{Success: true, ExpiresAt: expiresAt})
}
