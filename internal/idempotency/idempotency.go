// Package idempotency remembers the outcome of a request by a client supplied key
// so that a retried request is answered without repeating its side effects.
package idempotency

//go:generate mockgen -source=idempotency.go -destination=mock_idempotency.go -package=idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyDiscountRedeem is idem:discount:{user_id}:{client key}.
const KeyDiscountRedeem = "idem:discount:%d:%s"

const (
	DefaultTTL    = 24 * time.Hour
	pendingMarker = "__pending__"
)

var ErrInProgress = errors.New("request with this idempotency key is still in progress")

type Store interface {
	// Begin claims key. It returns the stored response if the key already
	// completed, ErrInProgress if another request holds the claim, and nil, nil
	// if the caller now owns the key.
	Begin(ctx context.Context, key string) ([]byte, error)
	// Complete stores the response for key.
	Complete(ctx context.Context, key string, response []byte) error
	// Abort drops the claim so that the request can be retried.
	Abort(ctx context.Context, key string)
}

func DiscountKey(userID int64, clientKey string) string {
	return fmt.Sprintf(KeyDiscountRedeem, userID, clientKey)
}

type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Begin(ctx context.Context, key string) ([]byte, error) {
	claimed, err := s.rdb.SetNX(ctx, key, pendingMarker, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("claim idempotency key: %w", err)
	}
	if claimed {
		return nil, nil
	}

	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) || val == pendingMarker {
		return nil, ErrInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("read idempotency key: %w", err)
	}
	return []byte(val), nil
}

func (s *RedisStore) Complete(ctx context.Context, key string, response []byte) error {
	if err := s.rdb.Set(ctx, key, string(response), s.ttl).Err(); err != nil {
		return fmt.Errorf("store idempotent response: %w", err)
	}
	return nil
}

func (s *RedisStore) Abort(ctx context.Context, key string) {
	_ = s.rdb.Del(ctx, key).Err()
}

// Nop never remembers anything. It is used when Redis is not configured.
type Nop struct{}

func (Nop) Begin(context.Context, string) ([]byte, error) { return nil, nil }
func (Nop) Complete(context.Context, string, []byte) error { return nil }
func (Nop) Abort(context.Context, string) {}
