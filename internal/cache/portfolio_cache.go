// Package cache provides the Redis-backed cache for rendered public
// portfolio pages. The portfolio is the hottest read path (unauthenticated,
// shared by link) and the only one whose payload is expensive to assemble,
// so it is the only cached view. Every mutation that changes what a
// portfolio page shows invalidates the affected slugs: assignment changes
// evict the client's page, property changes evict every page the property
// appears on, client renames evict both the old and the new slug.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mvoronin/estate-keeper/internal/config"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/models"
)

// ErrCacheMiss is returned by Get when no fresh portfolio is cached for
// the slug.
var ErrCacheMiss = errors.New("portfolio not in cache")

// PortfolioCache stores rendered portfolios keyed by client slug.
type PortfolioCache interface {
	Get(ctx context.Context, slug string) (models.Portfolio, error)
	Set(ctx context.Context, slug string, portfolio models.Portfolio) error
	Invalidate(ctx context.Context, slug string) error
}

const portfolioKeyPrefix = "portfolio:"

// redisPortfolioCache is the Redis implementation of [PortfolioCache].
// Portfolios are stored as JSON under "portfolio:<slug>" with a fixed TTL.
type redisPortfolioCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewPortfolioCache connects to Redis using the given cache settings and
// verifies connectivity with a ping. A zero TTL falls back to five
// minutes.
func NewPortfolioCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (PortfolioCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewPortfolioCache").Str("addr", cfg.RedisAddr).Msg("error connecting to redis (ping)")
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	log.Info().Str("func", "NewPortfolioCache").Str("addr", cfg.RedisAddr).Msg("connected to redis successfully")

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &redisPortfolioCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}, nil
}

func portfolioKey(slug string) string {
	return portfolioKeyPrefix + slug
}

// Get returns the cached portfolio for the slug, or [ErrCacheMiss].
func (c *redisPortfolioCache) Get(ctx context.Context, slug string) (models.Portfolio, error) {
	log := logger.FromContext(ctx)

	payload, err := c.client.Get(ctx, portfolioKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Portfolio{}, ErrCacheMiss
		}

		log.Err(err).Str("func", "redisPortfolioCache.Get").Str("slug", slug).Msg("failed to read cached portfolio")
		return models.Portfolio{}, err
	}

	var portfolio models.Portfolio
	if err := json.Unmarshal(payload, &portfolio); err != nil {
		// corrupt entry: drop it and report a miss so the caller re-renders
		log.Err(err).Str("func", "redisPortfolioCache.Get").Str("slug", slug).Msg("failed to decode cached portfolio, evicting")
		c.client.Del(ctx, portfolioKey(slug))
		return models.Portfolio{}, ErrCacheMiss
	}

	return portfolio, nil
}

// Set stores the rendered portfolio under the slug for the configured TTL.
func (c *redisPortfolioCache) Set(ctx context.Context, slug string, portfolio models.Portfolio) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(portfolio)
	if err != nil {
		log.Err(err).Str("func", "redisPortfolioCache.Set").Str("slug", slug).Msg("failed to encode portfolio")
		return err
	}

	if err := c.client.Set(ctx, portfolioKey(slug), payload, c.ttl).Err(); err != nil {
		log.Err(err).Str("func", "redisPortfolioCache.Set").Str("slug", slug).Msg("failed to cache portfolio")
		return err
	}

	return nil
}

// Invalidate removes the cached portfolio for the slug. Deleting an absent
// key is not an error.
func (c *redisPortfolioCache) Invalidate(ctx context.Context, slug string) error {
	log := logger.FromContext(ctx)

	if err := c.client.Del(ctx, portfolioKey(slug)).Err(); err != nil {
		log.Err(err).Str("func", "redisPortfolioCache.Invalidate").Str("slug", slug).Msg("failed to invalidate cached portfolio")
		return err
	}

	return nil
}
