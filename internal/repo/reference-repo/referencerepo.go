package referencerepo

import (
	"context"

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

// Load reads cities, districts and product types once. The result is read-only.
func (r *Repository) Load(ctx context.Context) (*domain.Reference, error) {
	cities, err := r.cities(ctx)
	if err != nil {
		return nil, err
	}
	districts, err := r.districts(ctx)
	if err != nil {
		return nil, err
	}
	types, err := r.productTypes(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewReference(cities, districts, types), nil
}

func (r *Repository) cities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM cities ORDER BY position, id`)
	if err != nil {
		zap.L().Error("can't load cities", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			zap.L().Error("can't scan city row", zap.Error(err))
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *Repository) districts(ctx context.Context) ([]domain.District, error) {
	rows, err := r.db.Query(ctx, `SELECT id, city_id, name FROM districts ORDER BY city_id, position, id`)
	if err != nil {
		zap.L().Error("can't load districts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var districts []domain.District
	for rows.Next() {
		var d domain.District
		if err := rows.Scan(&d.ID, &d.CityID, &d.Name); err != nil {
			zap.L().Error("can't scan district row", zap.Error(err))
			return nil, err
		}
		districts = append(districts, d)
	}
	return districts, rows.Err()
}

func (r *Repository) productTypes(ctx context.Context) ([]domain.ProductType, error) {
	rows, err := r.db.Query(ctx, `SELECT name, emoji FROM product_types ORDER BY position, name`)
	if err != nil {
		zap.L().Error("can't load product types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var types []domain.ProductType
	for rows.Next() {
		var pt domain.ProductType
		if err := rows.Scan(&pt.Name, &pt.Emoji); err != nil {
			zap.L().Error("can't scan product type row", zap.Error(err))
			return nil, err
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}
