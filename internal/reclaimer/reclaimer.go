// Package reclaimer releases expired basket holds in the background.
//
// Without it an expired hold keeps its unit reserved until the owner adds
// something to the basket again or clears it. Running the reclaimer changes
// that: stock frees itself within one interval after the hold expires.
package reclaimer

//go:generate mockgen -source=reclaimer.go -destination=mock_reclaimer.go -package=reclaimer

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/storefront/internal/config"
	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/events"
)

const defaultBatch = 1000

type Repo interface {
	FindUsersWithBaskets(ctx context.Context, afterID int64, limit uint32) ([]int64, error)
	ReleaseExpired(ctx context.Context, userID int64, now time.Time, ttl time.Duration) (int, error)
}

type Service struct {
	repo       Repo
	publisher  events.Publisher
	workerPool WorkerPoolI
	limit      uint32
	interval   time.Duration
	ttl        time.Duration
	now        func() time.Time
	inFlight   sync.Map
	done       chan struct{}
}

func New(cfg *config.Config, repo Repo, publisher events.Publisher) *Service {
	limit := cfg.ReclaimBatch
	if limit == 0 {
		limit = defaultBatch
	}
	ttl := cfg.HoldTTL
	if ttl <= 0 {
		ttl = domain.DefaultHoldTTL
	}
	return &Service{
		repo:       repo,
		publisher:  publisher,
		workerPool: NewWorkerPool(cfg.ReclaimWorkers),
		limit:      limit,
		interval:   cfg.ReclaimInterval,
		ttl:        ttl,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("hold reclaimer started", zap.Duration("interval", s.interval), zap.Duration("ttl", s.ttl))
	go s.run(ctx)
}

// Wait blocks until the reclaimer has stopped and its queued tasks are done.
func (s *Service) Wait() {
	<-s.done
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)
	defer s.workerPool.Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping hold reclaimer")
			return
		case <-ticker.C:
			s.reclaim(ctx)
		}
	}
}

// reclaim walks every user with a basket, one page at a time.
func (s *Service) reclaim(ctx context.Context) {
	var afterID int64
	for {
		users, err := s.repo.FindUsersWithBaskets(ctx, afterID, s.limit)
		if err != nil {
			zap.L().Error("failed to fetch users with baskets", zap.Error(err))
			return
		}
		if len(users) == 0 {
			return
		}
		if err := s.dispatch(ctx, users); err != nil {
			zap.L().Error("error reclaiming holds", zap.Error(err))
			return
		}
		if uint32(len(users)) < s.limit {
			return
		}
		afterID = users[len(users)-1]
	}
}

func (s *Service) dispatch(ctx context.Context, users []int64) error {
	var g errgroup.Group
	for _, userID := range users {
		userID := userID

		if _, loaded := s.inFlight.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(userID)
				return s.handleUser(ctx, userID)
			})
			if err != nil {
				s.inFlight.Delete(userID)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) handleUser(ctx context.Context, userID int64) error {
	released, err := s.repo.ReleaseExpired(ctx, userID, s.now(), s.ttl)
	if err != nil {
		return fmt.Errorf("failed to release expired holds of user %d: %w", userID, err)
	}
	if released == 0 {
		return nil
	}
	s.publisher.Publish(ctx, events.EventHoldsReclaimed, strconv.FormatInt(userID, 10), events.HoldsReclaimed{
		UserID:   userID,
		Released: released,
	})
	zap.L().Info("expired holds released", zap.Int64("user_id", userID), zap.Int("released", released))
	return nil
}
