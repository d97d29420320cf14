package basketservice

//go:generate mockgen -source=basketservice.go -destination=mock_basketservice.go -package=basketservice

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/events"
	"github.com/GlebRadaev/storefront/internal/service/pricing"
	"github.com/GlebRadaev/storefront/pkg/basket"
)

type Repo interface {
	GetBasket(ctx context.Context, userID int64) (string, error)
	Clear(ctx context.Context, userID int64) (int, error)
	Add(ctx context.Context, userID int64, entry basket.Entry, now time.Time, ttl time.Duration) (int, error)
}

type ProductRepo interface {
	FindAvailable(ctx context.Context, id int) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []int) (map[int]domain.Product, error)
}

type Service struct {
	repo        Repo
	productRepo ProductRepo
	adjuster    *pricing.Adjuster
	reference   *domain.Reference
	publisher   events.Publisher
	ttl         time.Duration
	now         func() time.Time
}

func New(repo Repo, productRepo ProductRepo, adjuster *pricing.Adjuster, reference *domain.Reference, publisher events.Publisher, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultHoldTTL
	}
	return &Service{
		repo:        repo,
		productRepo: productRepo,
		adjuster:    adjuster,
		reference:   reference,
		publisher:   publisher,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Get returns the live holds of a user priced for that user. Expired holds are
// left out but are not released here; holds whose product no longer exists are
// skipped.
func (s *Service) Get(ctx context.Context, userID int64) (*domain.BasketView, error) {
	raw, err := s.repo.GetBasket(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get basket", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	view := &domain.BasketView{Items: make([]domain.BasketItem, 0), Total: decimal.Zero}
	live, expired := basket.Partition(basket.Parse(raw), s.now(), s.ttl)
	if len(expired) > 0 {
		zap.L().Debug("skipping expired holds", zap.Int64("user_id", userID), zap.Int("count", len(expired)))
	}
	if len(live) == 0 {
		return view, nil
	}

	ids := make([]int, 0, len(live))
	seen := make(map[int]struct{}, len(live))
	for _, e := range live {
		if _, ok := seen[e.ProductID]; ok {
			continue
		}
		seen[e.ProductID] = struct{}{}
		ids = append(ids, e.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		zap.L().Error("failed to load basket products", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	pricer := s.adjuster.ForUser(userID)
	for _, e := range live {
		p, ok := products[e.ProductID]
		if !ok {
			continue
		}
		quote := pricer.Quote(ctx, p.ProductType, p.Price)
		view.Items = append(view.Items, domain.BasketItem{
			ProductID:   p.ID,
			ProductType: p.ProductType,
			Size:        p.Size,
			City:        p.City,
			District:    p.District,
			Emoji:       s.reference.Emoji(p.ProductType),
			Quote:       quote,
		})
		view.Total = view.Total.Add(quote.Price)
	}
	return view, nil
}

// Clear releases every hold of the user and empties the basket atomically.
func (s *Service) Clear(ctx context.Context, userID int64) error {
	released, err := s.repo.Clear(ctx, userID)
	if err != nil {
		zap.L().Error("failed to clear basket", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	s.publisher.Publish(ctx, events.EventBasketCleared, strconv.FormatInt(userID, 10), events.BasketCleared{
		UserID:   userID,
		Released: released,
	})
	zap.L().Info("basket cleared", zap.Int64("user_id", userID), zap.Int("released", released))
	return nil
}

// Add holds one unit of a sellable product for the user and returns when the
// hold expires. It fails with domain.ErrProductNotFound or domain.ErrOutOfStock.
func (s *Service) Add(ctx context.Context, userID int64, productID int) (time.Time, error) {
	product, err := s.productRepo.FindAvailable(ctx, productID)
	if err != nil {
		zap.L().Error("failed to get product", zap.Int("product_id", productID), zap.Error(err))
		return time.Time{}, err
	}
	if product == nil {
		return time.Time{}, domain.ErrProductNotFound
	}

	now := s.now()
	entry := basket.NewEntry(product.ID, product.Size, product.Price, product.City, product.District, now)
	released, err := s.repo.Add(ctx, userID, entry, now, s.ttl)
	if err != nil {
		return time.Time{}, err
	}

	expiresAt := now.Add(s.ttl)
	s.publisher.Publish(ctx, events.EventHoldAdded, strconv.FormatInt(userID, 10), events.HoldAdded{
		UserID:    userID,
		ProductID: product.ID,
		ExpiresAt: expiresAt,
		Released:  released,
	})
	return expiresAt, nil
}
