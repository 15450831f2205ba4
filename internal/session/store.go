package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// TTL matches the cookie lifetime handed to the client.
const TTL = 7 * 24 * time.Hour

var ErrNotFound = errors.New("session not found")

// Store keeps opaque session tokens (minted by the identity provider)
// against user ids. One live session per user: creating a new one drops
// the previous token.
type Store interface {
	Create(ctx context.Context, userID, token string) error
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

const (
	tokenKeyPrefix = "session:"
	userKeyPrefix  = "user_session:"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, userID, token string) error {
	userKey := userKeyPrefix + userID

	old, err := s.rdb.Get(ctx, userKey).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	// The previous token's delete and both writes ride one MULTI/EXEC, so
	// the replaced token is never resolvable once the user pointer moves.
	pipe := s.rdb.TxPipeline()
	if old != "" {
		pipe.Del(ctx, tokenKeyPrefix+old)
	}
	pipe.Set(ctx, tokenKeyPrefix+token, userID, TTL)
	pipe.Set(ctx, userKey, token, TTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Lookup(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, tokenKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	userID, err := s.rdb.Get(ctx, tokenKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.rdb.Del(ctx, tokenKeyPrefix+token).Err(); err != nil {
		return err
	}
	return s.rdb.Del(ctx, userKeyPrefix+userID).Err()
}
