package session

import (
	"context"
	"time"

	"classboard_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "session:"

// RedisStore 跨进程共享的会话后端，session.backend=redis 时启用
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, token string, userJSON []byte) error {
	return s.client.Set(ctx, keyPrefix+token, userJSON, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) ([]byte, error) {
	value, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, util.ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
