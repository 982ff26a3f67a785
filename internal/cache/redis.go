package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pduarte/aviacao/config"
	"github.com/pduarte/aviacao/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	airportsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, airportsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		airportsTTL: airportsTTL,
	}
}

func (c *RedisCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	data, err := c.client.Get(ctx, airportsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportsKey(), payload, c.airportsTTL).Err()
}

// Allow implements a fixed-window request counter for admission control.
// The first request in a window sets the key with the window TTL; the call
// reports whether the caller is still under limit.
func (c *RedisCache) Allow(ctx context.Context, callerKey string, limit int64, window time.Duration) (bool, error) {
	key := rateKey(callerKey)
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= limit, nil
}

func airportsKey() string {
	return "cache:aeroportos"
}

func rateKey(caller string) string {
	return fmt.Sprintf("rate:%s", caller)
}
