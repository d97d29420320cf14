package resellerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetDiscount returns the reseller percent for a user and product type, or 0 when
// none is configured.
func (r *Repository) GetDiscount(ctx context.Context, userID int64, productType string) (float64, error) {
	query := `
        SELECT percent
        FROM reseller_discounts
        WHERE user_id = $1 AND product_type = $2
    `
	var percent float64
	err := r.db.QueryRow(ctx, query, userID, productType).Scan(&percent)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		zap.L().Error("can't get reseller discount", zap.Int64("user_id", userID), zap.String("product_type", productType), zap.Error(err))
		return 0, err
	}
	return percent, nil
}
