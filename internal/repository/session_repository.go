package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"storefront-service/internal/entity"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores the cached user projection and token pair
// under fixed per-customer keys. No expiry is enforced; a rejected
// token upstream invalidates the session instead.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKeys(userID string) (token, refresh, user string) {
	return fmt.Sprintf("fasttech_token:%s", userID),
		fmt.Sprintf("fasttech_refresh_token:%s", userID),
		fmt.Sprintf("fasttech_user:%s", userID)
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	userData, err := json.Marshal(session.User)
	if err != nil {
		return err
	}

	tokenKey, refreshKey, userKey := sessionKeys(session.User.ID)
	if err := r.rdb.Set(ctx, tokenKey, session.Token, 0).Err(); err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, refreshKey, session.RefreshToken, 0).Err(); err != nil {
		return err
	}
	return r.rdb.Set(ctx, userKey, userData, 0).Err()
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (*entity.Session, error) {
	tokenKey, refreshKey, userKey := sessionKeys(userID)

	token, err := r.rdb.Get(ctx, tokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	refresh, err := r.rdb.Get(ctx, refreshKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	userData, err := r.rdb.Get(ctx, userKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session := &entity.Session{Token: token, RefreshToken: refresh}
	if err := json.Unmarshal([]byte(userData), &session.User); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	tokenKey, refreshKey, userKey := sessionKeys(userID)
	return r.rdb.Del(ctx, tokenKey, refreshKey, userKey).Err()
}
