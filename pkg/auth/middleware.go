package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/storefront/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

const InitDataHeader = "X-Telegram-Init-Data"

var ErrUnauthorized = errors.New("unauthorized")

// Authenticator resolves the caller from Telegram init data or, failing that,
// from a session token issued earlier for the same user.
type Authenticator struct {
	verifier   *InitDataVerifier
	jwtService JWTServiceInterface
}

func NewAuthenticator(verifier *InitDataVerifier, jwtService JWTServiceInterface) *Authenticator {
	return &Authenticator{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

// Identify returns the authenticated user id of r. When the init data header
// is present it decides alone; a bearer token is only consulted without it.
func (a *Authenticator) Identify(r *http.Request) (int64, error) {
	if initData := r.Header.Get(InitDataHeader); initData != "" {
		return a.fromInitData(initData)
	}
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, ErrUnauthorized
	}
	claims, err := a.jwtService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return 0, ErrUnauthorized
	}
	return claims.UserID, nil
}

func (a *Authenticator) fromInitData(initData string) (int64, error) {
	user, err := a.verifier.Verify(initData)
	if err != nil {
		return 0, ErrUnauthorized
	}
	return user.ID, nil
}

// Required rejects unauthenticated requests with 401.
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.Identify(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// Optional lets every request through and attaches the user id when one can
// be resolved.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, err := a.Identify(r); err == nil {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// InitDataRequired accepts Telegram init data only, so a session token can
// never be used to mint another one.
func (a *Authenticator) InitDataRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.fromInitData(r.Header.Get(InitDataHeader))
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok && userID != 0
}
