package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"voicehire/internal/repositories"
)

const refreshKeyPrefix = "refresh:"

// TokenRepo keeps refresh tokens server-side so they can be revoked.
// Expiry is enforced by the key TTL.
type TokenRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenRepo(rdb *redis.Client, ttl time.Duration) *TokenRepo {
	return &TokenRepo{rdb: rdb, ttl: ttl}
}

// Issue mints an opaque refresh token bound to the user.
func (r *TokenRepo) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := r.rdb.Set(ctx, refreshKeyPrefix+token, userID, r.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user id a refresh token is bound to.
func (r *TokenRepo) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := r.rdb.Get(ctx, refreshKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repositories.ErrNotFound
		}
		return "", err
	}
	return userID, nil
}

// Rotate atomically revokes the old token and issues a new one.
func (r *TokenRepo) Rotate(ctx context.Context, token string) (string, string, error) {
	userID, err := r.Resolve(ctx, token)
	if err != nil {
		return "", "", err
	}
	if err := r.Revoke(ctx, token); err != nil {
		return "", "", err
	}
	next, err := r.Issue(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return next, userID, nil
}

func (r *TokenRepo) Revoke(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, refreshKeyPrefix+token).Err()
}
