package productrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
)

// MaxListLimit caps a single catalog page.
const MaxListLimit = 100

const productColumns = `id, city, district, product_type, size, price, available, reserved`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// List returns sellable products matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE available > reserved`
	var args []any
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if filter.District != "" {
		args = append(args, filter.District)
		query += fmt.Sprintf(" AND district = $%d", len(args))
	}
	if filter.ProductType != "" {
		args = append(args, filter.ProductType)
		query += fmt.Sprintf(" AND product_type = $%d", len(args))
	}
	limit := filter.Limit
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.City, &p.District, &p.ProductType, &p.Size, &p.Price, &p.Available, &p.Reserved); err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate product rows", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// FindAvailable returns the product only while it still has sellable stock.
func (r *Repository) FindAvailable(ctx context.Context, id int) (*domain.Product, error) {
	query := `
        SELECT id, city, district, product_type, size, price, COALESCE(original_text, ''), available, reserved
        FROM products
        WHERE id = $1 AND available > reserved
    `
	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.City, &p.District, &p.ProductType, &p.Size, &p.Price, &p.Description, &p.Available, &p.Reserved)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Int("product_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// FindByIDs loads products regardless of stock. Missing ids are absent from the map.
func (r *Repository) FindByIDs(ctx context.Context, ids []int) (map[int]domain.Product, error) {
	products := make(map[int]domain.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't load products by id", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.City, &p.District, &p.ProductType, &p.Size, &p.Price, &p.Available, &p.Reserved); err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate product rows", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// FirstMedia returns the earliest media attached to each of the given products.
func (r *Repository) FirstMedia(ctx context.Context, ids []int) (map[int]domain.Media, error) {
	media := make(map[int]domain.Media, len(ids))
	if len(ids) == 0 {
		return media, nil
	}
	query := `
        SELECT DISTINCT ON (product_id) product_id, media_type, file_id
        FROM product_media
        WHERE product_id = ANY($1)
        ORDER BY product_id, id
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't load product media", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.Media
		if err := rows.Scan(&m.ProductID, &m.MediaType, &m.FileID); err != nil {
			zap.L().Error("can't scan media row", zap.Error(err))
			return nil, err
		}
		media[m.ProductID] = m
	}
	return media, rows.Err()
}

func (r *Repository) Media(ctx context.Context, productID int) ([]domain.Media, error) {
	query := `
        SELECT product_id, media_type, file_id
        FROM product_media
        WHERE product_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		zap.L().Error("can't load product media", zap.Int("product_id", productID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	media := make([]domain.Media, 0)
	for rows.Next() {
		var m domain.Media
		if err := rows.Scan(&m.ProductID, &m.MediaType, &m.FileID); err != nil {
			zap.L().Error("can't scan media row", zap.Error(err))
			return nil, err
		}
		media = append(media, m)
	}
	return media, rows.Err()
}
