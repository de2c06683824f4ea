// Package storage adapts redis and kafka to the session and notification
// ports of the consoles.
package storage

import (
	"context"
	"errors"
	"time"

	"delivery-console/internal/session"

	"github.com/redis/go-redis/v9"
)

// RedisSessions persists console credentials in redis. Keys are namespaced
// by Prefix so the admin and storefront stores never share a key.
type RedisSessions struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

var _ session.Backend = (*RedisSessions)(nil)

func NewRedisSessions(client *redis.Client, app session.App, ttl time.Duration) *RedisSessions {
	return &RedisSessions{Client: client, Prefix: "console:" + string(app) + ":", TTL: ttl}
}

func (s *RedisSessions) key(name string) string {
	return s.Prefix + name
}

func (s *RedisSessions) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.Client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisSessions) Set(ctx context.Context, key, value string) error {
	return s.Client.Set(ctx, s.key(key), value, s.TTL).Err()
}

func (s *RedisSessions) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = s.key(key)
	}
	return s.Client.Del(ctx, full...).Err()
}
