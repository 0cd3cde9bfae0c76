package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// IdempotencyRepository reserves checkout submission keys in Redis so a
// retried request is recognized across service instances. Keys expire
// after the retention window.
type IdempotencyRepository struct {
	rdb *redis.Client
}

func NewIdempotencyRepository(rdb *redis.Client) *IdempotencyRepository {
	return &IdempotencyRepository{rdb: rdb}
}

// Reserve claims the key atomically. It returns false when the key was
// already claimed within the retention window.
func (r *IdempotencyRepository) Reserve(ctx context.Context, key string) (bool, error) {
	return r.rdb.SetNX(ctx, fmt.Sprintf("idempotent-key:%s", key), "exists", 24*time.Hour).Result()
}
