package userservice

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
}

type Service struct {
	userRepo Repo
}

func New(userRepo Repo) *Service {
	return &Service{userRepo: userRepo}
}

// GetBalance returns the stored balance, or 0 for a user that has no row yet.
func (s *Service) GetBalance(ctx context.Context, userID int64) (float64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user balance", zap.Int64("user_id", userID), zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, nil
	}
	return user.Balance, nil
}
