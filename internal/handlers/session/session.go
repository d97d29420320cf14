package session

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/storefront/internal/dto"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/utils"
)

type Service interface {
	StartSession(ctx context.Context, userID int64) (string, time.Time, error)
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// StartSession godoc
//
//	@Summary		Exchange Telegram init data for a session token
//	@Description	Registers the Telegram user on first contact. The token can be sent as a bearer token instead of the init data header until it expires.
//	@Tags			Авторизация
//	@Security		TelegramInitData
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponseDTO	"Session token"
//	@Failure		401	{object}	utils.Response			"Invalid init data"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/session [post]
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	token, expiresAt, err := h.sessionService.StartSession(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{Success: true, Token: token, ExpiresAt: expiresAt})
}
