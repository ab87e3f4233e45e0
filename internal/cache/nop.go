package cache

import (
	"context"

	"github.com/mvoronin/estate-keeper/models"
)

// nopPortfolioCache is used when no Redis address is configured: every read
// misses and writes are discarded, so portfolio pages always render from
// the database.
type nopPortfolioCache struct{}

// NewNopPortfolioCache returns a cache that stores nothing.
func NewNopPortfolioCache() PortfolioCache {
	return nopPortfolioCache{}
}

func (nopPortfolioCache) Get(_ context.Context, _ string) (models.Portfolio, error) {
	return models.Portfolio{}, ErrCacheMiss
}

func (nopPortfolioCache) Set(_ context.Context, _ string, _ models.Portfolio) error {
	return nil
}

func (nopPortfolioCache) Invalidate(_ context.Context, _ string) error {
	return nil
}
