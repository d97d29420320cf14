package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
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

func (repo *Repository) FindByID(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT user_id, basket, balance FROM users WHERE user_id = $1", userID).Scan(&user.ID, &user.Basket, &user.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Ensure creates the user row on first contact and leaves an existing row untouched.
func (repo *Repository) Ensure(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := repo.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't save user", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
