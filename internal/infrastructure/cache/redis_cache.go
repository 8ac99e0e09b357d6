package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/pkg/config"
)

const keyPrefix = "smartops:principal:"

// RedisPrincipalCache implementa ports.PrincipalCache sobre Redis con TTL fijo.
type RedisPrincipalCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis crea el cliente y verifica la conexión con un PING.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*RedisPrincipalCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return NewRedisFromClient(rdb, cfg.TTL), nil
}

// NewRedisFromClient envuelve un cliente existente.
func NewRedisFromClient(rdb *redis.Client, ttl time.Duration) *RedisPrincipalCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisPrincipalCache{rdb: rdb, ttl: ttl}
}

func (c *RedisPrincipalCache) Get(ctx context.Context, userID int64) (*entity.Principal, error) {
	raw, err := c.rdb.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p entity.Principal
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RedisPrincipalCache) Set(ctx context.Context, p entity.Principal) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(p.UserID), raw, c.ttl).Err()
}

func (c *RedisPrincipalCache) Delete(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, key(userID)).Err()
}

// Close cierra el cliente Redis.
func (c *RedisPrincipalCache) Close() error {
	return c.rdb.Close()
}

func key(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}
