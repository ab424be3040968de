package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachingGateway decorates a MovieGateway with a Redis read-through cache.
// Listings and details are either popular pages everyone hits or profile
// fan-out calls, both cache well. Videos, images and search stay uncached.
type CachingGateway struct {
	inner MovieGateway
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachingGateway(inner MovieGateway, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachingGateway {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingGateway{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		log:   log.With(zap.String("component", "gateway_cache")),
	}
}

func (c *CachingGateway) Popular(ctx context.Context, page int) (*MoviePage, error) {
	return cached(ctx, c, fmt.Sprintf("gw:popular:%d", page), func() (*MoviePage, error) {
		return c.inner.Popular(ctx, page)
	})
}

func (c *CachingGateway) TopRated(ctx context.Context, page int) (*MoviePage, error) {
	return cached(ctx, c, fmt.Sprintf("gw:toprated:%d", page), func() (*MoviePage, error) {
		return c.inner.TopRated(ctx, page)
	})
}

func (c *CachingGateway) Details(ctx context.Context, movieID int64) (*MovieDetail, error) {
	return cached(ctx, c, fmt.Sprintf("gw:details:%d", movieID), func() (*MovieDetail, error) {
		return c.inner.Details(ctx, movieID)
	})
}

func (c *CachingGateway) Recommendations(ctx context.Context, movieID int64) (*MoviePage, error) {
	return cached(ctx, c, fmt.Sprintf("gw:recs:%d", movieID), func() (*MoviePage, error) {
		return c.inner.Recommendations(ctx, movieID)
	})
}

func (c *CachingGateway) Videos(ctx context.Context, movieID int64) ([]Video, error) {
	return c.inner.Videos(ctx, movieID)
}

func (c *CachingGateway) Images(ctx context.Context, movieID int64) (*ImageSet, error) {
	return c.inner.Images(ctx, movieID)
}

func (c *CachingGateway) Search(ctx context.Context, query string, page int) (*MoviePage, error) {
	return c.inner.Search(ctx, query, page)
}

// cached checks Redis first and falls back to the inner gateway, storing
// the result best effort. Cache failures never fail the request.
func cached[T any](ctx context.Context, c *CachingGateway, key string, load func() (*T, error)) (*T, error) {
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Corrupted entry, drop it
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			c.log.Debug("Cache store failed", zap.String("key", key), zap.Error(err))
		}
	}

	return out, nil
}
