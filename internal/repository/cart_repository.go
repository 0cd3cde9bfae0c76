package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"storefront-service/internal/entity"
)

// CartRepository persists session-scoped carts in Redis, one JSON
// document per customer. Entry order survives the round trip.
type CartRepository struct {
	rdb *redis.Client
}

func NewCartRepository(rdb *redis.Client) *CartRepository {
	return &CartRepository{rdb: rdb}
}

func cartKey(customerID string) string {
	return fmt.Sprintf("cart:%s", customerID)
}

// Get returns the customer's cart, empty when none is stored.
func (r *CartRepository) Get(ctx context.Context, customerID string) (*entity.Cart, error) {
	data, err := r.rdb.Get(ctx, cartKey(customerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &entity.Cart{}, nil
		}
		return nil, err
	}

	cart := &entity.Cart{}
	if err := json.Unmarshal([]byte(data), cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) Save(ctx context.Context, customerID string, cart *entity.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, cartKey(customerID), data, 0).Err()
}

func (r *CartRepository) Delete(ctx context.Context, customerID string) error {
	return r.rdb.Del(ctx, cartKey(customerID)).Err()
}
