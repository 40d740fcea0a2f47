package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// Cache stores generated responses by key
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.rdb.Set(ctx, key, value, c.ttl).Err()
}

type cached struct {
	next      Generator
	cache     Cache
	namespace string
	group     singleflight.Group
	logger    *logging.Logger
}

// WithCache serves repeated prompts from cache and collapses identical
// in-flight prompts into one delegate call. Cache errors only cost a miss.
func WithCache(next Generator, cache Cache, namespace string, logger *logging.Logger) Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &cached{next: next, cache: cache, namespace: namespace, logger: logger}
}

func (c *cached) Generate(ctx context.Context, system, user string) (string, error) {
	key := CacheKey(c.namespace, system, user)

	if val, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn("llm cache read failed", "error", err)
	} else if ok {
		c.logger.Debug("llm cache hit", "key", key)
		return val, nil
	}

	// the shared call must not inherit one caller's cancellation; next carries the delegate timeout
	sctx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		out, err := c.next.Generate(sctx, system, user)
		if err != nil {
			return "", err
		}
		if err := c.cache.Set(sctx, key, out); err != nil {
			c.logger.Warn("llm cache write failed", "error", err)
		}
		return out, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			c.logger.Debug("llm call shared", "key", key)
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// CacheKey hashes the namespace and both prompts
func CacheKey(namespace, system, user string) string {
	h := sha256.New()
	h.Write([]byte(namespace))
	h.Write([]byte{0})
	h.Write([]byte(system))
	h.Write([]byte{0})
	h.Write([]byte(user))
	return "hiring:llm:" + hex.EncodeToString(h.Sum(nil))
}
