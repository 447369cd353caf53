package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webshop-go/storefront-api/basket"
)

const basketTTL = 7 * 24 * time.Hour

// RedisStore holds each basket as a JSON value under "basket:<sid>".
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("session: redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func basketKey(sid string) string { return "basket:" + sid }

func (s *RedisStore) Get(ctx context.Context, sid string) (basket.Basket, error) {
	val, err := s.rdb.Get(ctx, basketKey(sid)).Result()
	if err == redis.Nil {
		return basket.Basket{}, nil
	}
	if err != nil {
		return nil, err
	}

	var b basket.Basket
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisStore) Put(ctx context.Context, sid string, b basket.Basket) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, basketKey(sid), data, basketTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, basketKey(sid)).Err()
}
