package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ReportCache stores computed reports under a generation number. Bumping the
// generation orphans every report cached before a ledger write.
type ReportCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Bump(ctx context.Context) error
}

const reportGenerationKey = "reports:generation"

type RedisReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisReportCache(rdb *redis.Client, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisReportCache{rdb: rdb, ttl: ttl}
}

func (c *RedisReportCache) Generation(ctx context.Context) (int64, error) {
	val, err := c.rdb.Get(ctx, reportGenerationKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// Get reports false on a miss.
func (c *RedisReportCache) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	cachedData, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(cachedData, target); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, value interface{}) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, dataJSON, c.ttl).Err()
}

func (c *RedisReportCache) Bump(ctx context.Context) error {
	return c.rdb.Incr(ctx, reportGenerationKey).Err()
}

// NoopReportCache is used when Redis is not configured.
type NoopReportCache struct{}

func (NoopReportCache) Generation(context.Context) (int64, error)             { return 0, nil }
func (NoopReportCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (NoopReportCache) Set(context.Context, string, interface{}) error         { return nil }
func (NoopReportCache) Bump(context.Context) error                             { return nil }
