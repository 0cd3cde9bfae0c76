package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// PromoRepository keeps the per-customer promotion and banner flags
// under fixed string keys.
type PromoRepository struct {
	rdb *redis.Client
}

func NewPromoRepository(rdb *redis.Client) *PromoRepository {
	return &PromoRepository{rdb: rdb}
}

func (r *PromoRepository) flag(ctx context.Context, key string) (bool, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return val == "true", nil
}

func (r *PromoRepository) setFlag(ctx context.Context, key string) error {
	return r.rdb.Set(ctx, key, "true", 0).Err()
}

func (r *PromoRepository) BotConfigured(ctx context.Context, userID string) (bool, error) {
	return r.flag(ctx, fmt.Sprintf("telegram-bot-configured-%s", userID))
}

func (r *PromoRepository) MarkBotConfigured(ctx context.Context, userID string) error {
	return r.setFlag(ctx, fmt.Sprintf("telegram-bot-configured-%s", userID))
}

func (r *PromoRepository) HasOrdered(ctx context.Context, userID string) (bool, error) {
	return r.flag(ctx, fmt.Sprintf("user-has-ordered-%s", userID))
}

func (r *PromoRepository) MarkOrdered(ctx context.Context, userID string) error {
	return r.setFlag(ctx, fmt.Sprintf("user-has-ordered-%s", userID))
}

func (r *PromoRepository) PromoUsed(ctx context.Context, userID string) (bool, error) {
	return r.flag(ctx, fmt.Sprintf("telegram-promo-used-%s", userID))
}

func (r *PromoRepository) MarkPromoUsed(ctx context.Context, userID string) error {
	return r.setFlag(ctx, fmt.Sprintf("telegram-promo-used-%s", userID))
}

func (r *PromoRepository) BannerDismissed(ctx context.Context, userID string) (bool, error) {
	return r.flag(ctx, fmt.Sprintf("telegram-promo-banner-dismissed-%s", userID))
}

func (r *PromoRepository) DismissBanner(ctx context.Context, userID string) error {
	return r.setFlag(ctx, fmt.Sprintf("telegram-promo-banner-dismissed-%s", userID))
}
