package catalogservice

//go:generate mockgen -source=catalogservice.go -destination=mock_catalogservice.go -package=catalogservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/service/pricing"
)

type ProductRepo interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindAvailable(ctx context.Context, id int) (*domain.Product, error)
	FirstMedia(ctx context.Context, ids []int) (map[int]domain.Media, error)
	Media(ctx context.Context, productID int) ([]domain.Media, error)
}

type Service struct {
	productRepo ProductRepo
	adjuster    *pricing.Adjuster
	reference   *domain.Reference
}

func New(productRepo ProductRepo, adjuster *pricing.Adjuster, reference *domain.Reference) *Service {
	return &Service{
		productRepo: productRepo,
		adjuster:    adjuster,
		reference:   reference,
	}
}

func (s *Service) Cities() []domain.City {
	return s.reference.Cities
}

func (s *Service) Districts(cityID string) []domain.District {
	return s.reference.Districts[cityID]
}

func (s *Service) ProductTypes() []domain.ProductType {
	return s.reference.ProductTypes
}

// ListProducts returns sellable products. City and district in filter are
// reference ids and are translated to display names; a district without a
// city is ignored. userID selects reseller pricing and may be zero.
func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter, userID int64) ([]domain.ProductView, error) {
	query := domain.ProductFilter{
		ProductType: filter.ProductType,
		Limit:       filter.Limit,
	}
	if filter.City != "" {
		query.City = s.reference.CityName(filter.City)
		if filter.District != "" {
			query.District = s.reference.DistrictName(filter.City, filter.District)
		}
	}

	products, err := s.productRepo.List(ctx, query)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}

	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	media, err := s.productRepo.FirstMedia(ctx, ids)
	if err != nil {
		zap.L().Error("failed to load product media", zap.Error(err))
		return nil, err
	}

	pricer := s.adjuster.ForUser(userID)
	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		view := s.view(ctx, pricer, p)
		if m, ok := media[p.ID]; ok {
			view.HasMedia = true
			view.MediaType = m.MediaType
		}
		views = append(views, view)
	}
	return views, nil
}

// GetProduct returns a sellable product with all its media, or
// domain.ErrProductNotFound.
func (s *Service) GetProduct(ctx context.Context, id int, userID int64) (*domain.ProductView, error) {
	product, err := s.productRepo.FindAvailable(ctx, id)
	if err != nil {
		zap.L().Error("failed to get product", zap.Int("product_id", id), zap.Error(err))
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	media, err := s.productRepo.Media(ctx, id)
	if err != nil {
		zap.L().Error("failed to load product media", zap.Int("product_id", id), zap.Error(err))
		return nil, err
	}

	view := s.view(ctx, s.adjuster.ForUser(userID), *product)
	view.Media = media
	view.HasMedia = len(media) > 0
	if view.HasMedia {
		view.MediaType = media[0].MediaType
	}
	return &view, nil
}

func (s *Service) view(ctx context.Context, pricer *pricing.Pricer, p domain.Product) domain.ProductView {
	return domain.ProductView{
		Product: p,
		Emoji:   s.reference.Emoji(p.ProductType),
		Quote:   pricer.Quote(ctx, p.ProductType, p.Price),
		InStock: p.Sellable(),
	}
}
