package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	sessionKeyPrefix = "login:user:token"
	sessionTTL       = 30 * time.Minute
)

// SessionRepository stores the single active access token per user. Logging
// in elsewhere overwrites it, invalidating the old session.
type SessionRepository struct {
	Client *redis.Client
}

func (r *SessionRepository) key(userID uint64) string {
	return fmt.Sprintf("%s:%d", sessionKeyPrefix, userID)
}

func (r *SessionRepository) Add(ctx context.Context, userID uint64, token string) error {
	if err := r.Client.Set(ctx, r.key(userID), token, sessionTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, userID uint64) (string, error) {
	token, err := r.Client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// Extend slides the session expiry on each authenticated request.
func (r *SessionRepository) Extend(ctx context.Context, userID uint64) error {
	if _, err := r.Client.Expire(ctx, r.key(userID), sessionTTL).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID uint64) error {
	if err := r.Client.Del(ctx, r.key(userID)).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
