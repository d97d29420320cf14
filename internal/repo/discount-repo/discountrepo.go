package discountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Redeem consumes one use of code for total and records the redemption. The use is
// taken by a single conditional update, so concurrent calls can never take more
// uses than the code has left. A rejected code yields one of the domain discount
// errors and changes nothing.
func (r *Repository) Redeem(ctx context.Context, code string, total decimal.Decimal, userID int64) (*domain.Redemption, error) {
	claim := `
        UPDATE discount_codes
        SET uses_left = uses_left - 1
        WHERE code = $1
          AND uses_left > 0
          AND (expires_at IS NULL OR expires_at > now())
          AND min_total <= $2
        RETURNING code, kind, value, min_total, uses_left
    `
	record := `
        INSERT INTO discount_redemptions (code, user_id, total, discount_amount, final_total)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, redeemed_at
    `
	var redemption *domain.Redemption
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var c domain.DiscountCode
		err := r.db.QueryRow(ctx, claim, code, total).Scan(&c.Code, &c.Kind, &c.Value, &c.MinTotal, &c.UsesLeft)
		if errors.Is(err, pgx.ErrNoRows) {
			return r.rejection(ctx, code, total)
		}
		if err != nil {
			zap.L().Error("can't claim discount code", zap.String("code", code), zap.Error(err))
			return err
		}

		amount, final := c.Apply(total)
		rd := domain.Redemption{
			Code:           c.Code,
			UserID:         userID,
			Total:          total,
			DiscountAmount: amount,
			FinalTotal:     final,
		}
		err = r.db.QueryRow(ctx, record, rd.Code, rd.UserID, rd.Total, rd.DiscountAmount, rd.FinalTotal).Scan(&rd.ID, &rd.RedeemedAt)
		if err != nil {
			zap.L().Error("can't record discount redemption", zap.String("code", code), zap.Error(err))
			return err
		}
		redemption = &rd
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redemption, nil
}

// rejection explains why the conditional claim matched no row.
func (r *Repository) rejection(ctx context.Context, code string, total decimal.Decimal) error {
	query := `
        SELECT uses_left, min_total, (expires_at IS NOT NULL AND expires_at <= now())
        FROM discount_codes
        WHERE code = $1
    `
	var (
		usesLeft int
		minTotal float64
		expired  bool
	)
	err := r.db.QueryRow(ctx, query, code).Scan(&usesLeft, &minTotal, &expired)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrUnknownCode
	}
	if err != nil {
		zap.L().Error("can't read discount code", zap.String("code", code), zap.Error(err))
		return err
	}
	switch {
	case expired:
		return domain.ErrCodeExpired
	case usesLeft <= 0:
		return domain.ErrCodeUsed
	case decimal.NewFromFloat(minTotal).GreaterThan(total):
		return domain.ErrMinTotalNotMet
	default:
		// Another redemption took the last use between the claim and this read.
		return domain.ErrCodeUsed
	}
}
