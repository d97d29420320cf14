package basketrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
	"github.com/GlebRadaev/storefront/pkg/basket"
)

const (
	releaseQuery = `UPDATE products SET reserved = reserved - 1 WHERE id = $1 AND reserved > 0`
	reserveQuery = `UPDATE products SET reserved = reserved + 1 WHERE id = $1 AND available > reserved`
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

// GetBasket returns the stored basket string. An unknown user has an empty basket.
func (r *Repository) GetBasket(ctx context.Context, userID int64) (string, error) {
	query := `
        SELECT basket
        FROM users
        WHERE user_id = $1
    `
	var raw string
	err := r.db.QueryRow(ctx, query, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		zap.L().Error("can't get basket", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}
	return raw, nil
}

// Clear releases one unit for every stored hold, live or expired, and empties the
// basket in the same transaction. It returns the number of holds released.
func (r *Repository) Clear(ctx context.Context, userID int64) (int, error) {
	var released int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		raw, found, err := r.lockBasket(ctx, userID)
		if err != nil || !found || raw == "" {
			return err
		}
		ids := basket.ProductIDs(raw)
		if err := r.release(ctx, ids); err != nil {
			return err
		}
		if err := r.saveBasket(ctx, userID, ""); err != nil {
			return err
		}
		released = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}

// Add reserves one unit of the entry's product and appends the hold to the basket.
// Expired and unreadable holds already in the basket are released first.
// domain.ErrOutOfStock is returned when nothing is left to reserve; the
// transaction is rolled back in that case.
func (r *Repository) Add(ctx context.Context, userID int64, entry basket.Entry, now time.Time, ttl time.Duration) (int, error) {
	var released int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `INSERT INTO users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
			zap.L().Error("can't create user", zap.Int64("user_id", userID), zap.Error(err))
			return err
		}
		raw, _, err := r.lockBasket(ctx, userID)
		if err != nil {
			return err
		}
		keep, release := basket.Reconcile(raw, now, ttl)
		if err := r.release(ctx, release); err != nil {
			return err
		}

		tag, err := r.db.Exec(ctx, reserveQuery, entry.ProductID)
		if err != nil {
			zap.L().Error("can't reserve product", zap.Int("product_id", entry.ProductID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrOutOfStock
		}

		if err := r.saveBasket(ctx, userID, basket.Encode(append(keep, entry))); err != nil {
			return err
		}
		released = len(release)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}

// ReleaseExpired releases the expired holds of one user and keeps the live ones.
func (r *Repository) ReleaseExpired(ctx context.Context, userID int64, now time.Time, ttl time.Duration) (int, error) {
	var released int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		raw, found, err := r.lockBasket(ctx, userID)
		if err != nil || !found {
			return err
		}
		keep, release := basket.Reconcile(raw, now, ttl)
		if len(release) == 0 {
			return nil
		}
		if err := r.release(ctx, release); err != nil {
			return err
		}
		if err := r.saveBasket(ctx, userID, basket.Encode(keep)); err != nil {
			return err
		}
		released = len(release)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}

// FindUsersWithBaskets returns up to limit users holding a non-empty basket
// whose id is greater than afterID, in id order.
func (r *Repository) FindUsersWithBaskets(ctx context.Context, afterID int64, limit uint32) ([]int64, error) {
	query := `
        SELECT user_id
        FROM users
        WHERE basket <> '' AND user_id > $1
        ORDER BY user_id
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, afterID, int(limit))
	if err != nil {
		zap.L().Error("can't get users with baskets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []int64
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, userID)
	}
	return users, rows.Err()
}

func (r *Repository) lockBasket(ctx context.Context, userID int64) (string, bool, error) {
	query := `
        SELECT basket
        FROM users
        WHERE user_id = $1
        FOR UPDATE
    `
	var raw string
	err := r.db.QueryRow(ctx, query, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		zap.L().Error("can't lock basket", zap.Int64("user_id", userID), zap.Error(err))
		return "", false, err
	}
	return raw, true, nil
}

// release decrements reserved once per id. A missing product or a counter already
// at zero affects no rows and is not an error.
func (r *Repository) release(ctx context.Context, ids []int) error {
	for _, id := range ids {
		if _, err := r.db.Exec(ctx, releaseQuery, id); err != nil {
			zap.L().Error("can't release hold", zap.Int("product_id", id), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) saveBasket(ctx context.Context, userID int64, raw string) error {
	if _, err := r.db.Exec(ctx, `UPDATE users SET basket = $1 WHERE user_id = $2`, raw, userID); err != nil {
		zap.L().Error("can't save basket", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
