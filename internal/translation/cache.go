package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/logger"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/metrics"
)

const keyPrefix = "translation:"

// CachedGateway memoizes another gateway's answers in redis.
// Cache failures never fail a request; the wrapped gateway is used instead.
type CachedGateway struct {
	next    Gateway
	rdb     redis.Cmdable
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewCachedGateway wraps next with a redis cache. m may be nil.
func NewCachedGateway(next Gateway, rdb redis.Cmdable, ttl time.Duration, m *metrics.Metrics) *CachedGateway {
	return &CachedGateway{next: next, rdb: rdb, ttl: ttl, metrics: m}
}

func (c *CachedGateway) DetectLanguage(ctx context.Context, text string) (string, error) {
	return c.lookup(ctx, cacheKey("lang", text), func() (string, error) {
		return c.next.DetectLanguage(ctx, text)
	})
}

func (c *CachedGateway) TranslateToEnglish(ctx context.Context, text string) (string, error) {
	return c.lookup(ctx, cacheKey("en", text), func() (string, error) {
		return c.next.TranslateToEnglish(ctx, text)
	})
}

func (c *CachedGateway) lookup(ctx context.Context, key string, load func() (string, error)) (string, error) {
	v, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		c.metrics.ObserveCache("hit")
		return v, nil
	case errors.Is(err, redis.Nil):
		c.metrics.ObserveCache("miss")
	default:
		c.metrics.ObserveCache("error")
		logger.CtxWarn(ctx, "translation cache read failed: %v", err)
	}

	v, err = load()
	if err != nil {
		return "", err
	}

	if err := c.rdb.Set(ctx, key, v, c.ttl).Err(); err != nil {
		c.metrics.ObserveCache("error")
		logger.With(logger.Fields{"cache_key": key}).Warn(ctx, "translation cache write failed: %v", err)
	} else {
		c.metrics.ObserveCache("set")
	}
	return v, nil
}

func cacheKey(kind, text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + kind + ":" + hex.EncodeToString(sum[:])
}
