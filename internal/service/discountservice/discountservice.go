package discountservice

//go:generate mockgen -source=discountservice.go -destination=mock_discountservice.go -package=discountservice

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/events"
	"github.com/GlebRadaev/storefront/internal/idempotency"
)

// MessageUnavailable is returned to the shopper when the code could not be
// checked at all.
const MessageUnavailable = "discount service unavailable"

type Repo interface {
	Redeem(ctx context.Context, code string, total decimal.Decimal, userID int64) (*domain.Redemption, error)
}

type Service struct {
	repo      Repo
	store     idempotency.Store
	publisher events.Publisher
}

func New(repo Repo, store idempotency.Store, publisher events.Publisher) *Service {
	return &Service{
		repo:      repo,
		store:     store,
		publisher: publisher,
	}
}

// Validate checks code against total and redeems it on success. The applier is
// called at most once per call; with a non-empty idempotencyKey a repeated
// request gets the first outcome back instead. idempotency.ErrInProgress is
// returned while an identical request is still running.
func (s *Service) Validate(ctx context.Context, userID int64, code string, total decimal.Decimal, idempotencyKey string) (*domain.DiscountOutcome, error) {
	code = domain.NormalizeCode(code)
	if code == "" {
		return &domain.DiscountOutcome{Valid: false, Message: domain.ErrCodeRequired.Error()}, nil
	}

	key := ""
	if idempotencyKey != "" {
		key = idempotency.DiscountKey(userID, idempotencyKey)
		cached, err := s.store.Begin(ctx, key)
		switch {
		case errors.Is(err, idempotency.ErrInProgress):
			return nil, err
		case err != nil:
			zap.L().Warn("idempotency store unavailable, validating without it", zap.Error(err))
			key = ""
		case cached != nil:
			var outcome domain.DiscountOutcome
			if err := json.Unmarshal(cached, &outcome); err == nil {
				return &outcome, nil
			}
			zap.L().Error("can't decode stored discount outcome", zap.String("key", key))
			return nil, idempotency.ErrInProgress
		}
	}

	outcome, settled := s.redeem(ctx, userID, code, total)
	if key != "" {
		s.remember(ctx, key, outcome, settled)
	}
	return outcome, nil
}

// redeem reports settled=false when the applier failed for reasons other than
// the code itself, so that the request may be retried.
func (s *Service) redeem(ctx context.Context, userID int64, code string, total decimal.Decimal) (*domain.DiscountOutcome, bool) {
	rd, err := s.repo.Redeem(ctx, code, total, userID)
	if err != nil {
		if isRejection(err) {
			return &domain.DiscountOutcome{Valid: false, Message: err.Error()}, true
		}
		zap.L().Error("discount redemption failed", zap.Int64("user_id", userID), zap.String("code", code), zap.Error(err))
		return &domain.DiscountOutcome{Valid: false, Message: MessageUnavailable}, false
	}

	s.publisher.Publish(ctx, events.EventDiscountRedeemed, strconv.FormatInt(userID, 10), events.DiscountRedeemed{
		UserID:         userID,
		Code:           rd.Code,
		Total:          rd.Total,
		DiscountAmount: rd.DiscountAmount,
		FinalTotal:     rd.FinalTotal,
	})
	zap.L().Info("discount code redeemed", zap.Int64("user_id", userID), zap.String("code", rd.Code))
	return &domain.DiscountOutcome{
		Valid:          true,
		Code:           rd.Code,
		DiscountAmount: rd.DiscountAmount,
		FinalTotal:     rd.FinalTotal,
	}, true
}

func (s *Service) remember(ctx context.Context, key string, outcome *domain.DiscountOutcome, settled bool) {
	if !settled {
		s.store.Abort(ctx, key)
		return
	}
	body, err := json.Marshal(outcome)
	if err != nil {
		zap.L().Error("can't encode discount outcome", zap.Error(err))
		s.store.Abort(ctx, key)
		return
	}
	if err := s.store.Complete(ctx, key, body); err != nil {
		zap.L().Error("can't store discount outcome", zap.String("key", key), zap.Error(err))
	}
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrUnknownCode) ||
		errors.Is(err, domain.ErrCodeExpired) ||
		errors.Is(err, domain.ErrCodeUsed) ||
		errors.Is(err, domain.ErrMinTotalNotMet)
}
