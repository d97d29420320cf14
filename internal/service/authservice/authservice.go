package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/pkg/auth"
)

const DefaultSessionTTL = 15 * time.Minute

type Repo interface {
	Ensure(ctx context.Context, userID int64) error
}

type Service struct {
	userRepo   Repo
	jwtService auth.JWTServiceInterface
	sessionTTL time.Duration
	now        func() time.Time
}

func New(userRepo Repo, jwtService auth.JWTServiceInterface, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// StartSession registers the Telegram user on first contact and issues a
// session token for it.
func (s *Service) StartSession(ctx context.Context, userID int64) (string, time.Time, error) {
	if err := s.userRepo.Ensure(ctx, userID); err != nil {
		zap.L().Error("can't register user", zap.Int64("user_id", userID), zap.Error(err))
		return "", time.Time{}, err
	}

	expiresAt := s.now().Add(s.sessionTTL)
	token, err := s.jwtService.GenerateJWT(userID, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token", zap.Int64("user_id", userID), zap.Error(err))
		return "", time.Time{}, err
	}
	zap.L().Info("session started", zap.Int64("user_id", userID))
	return token, expiresAt, nil
}
