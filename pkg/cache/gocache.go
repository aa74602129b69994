package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type goCacheWrapper struct {
	cache *gocache.Cache
}

// NewGoCache builds the in-process backend on patrickmn/go-cache.
func NewGoCache(config LocalConfig) Cache {
	defaultExpiration := config.DefaultExpiration
	if defaultExpiration == 0 {
		defaultExpiration = 5 * time.Minute
	}
	cleanupInterval := config.CleanupInterval
	if cleanupInterval == 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &goCacheWrapper{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

func (g *goCacheWrapper) Get(_ context.Context, key string) (interface{}, bool) {
	return g.cache.Get(key)
}

func (g *goCacheWrapper) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	g.cache.Set(key, value, expiration)
	return nil
}

func (g *goCacheWrapper) Delete(_ context.Context, key string) error {
	g.cache.Delete(key)
	return nil
}

func (g *goCacheWrapper) Exists(_ context.Context, key string) bool {
	_, found := g.cache.Get(key)
	return found
}

func (g *goCacheWrapper) Clear(_ context.Context) error {
	g.cache.Flush()
	return nil
}

func (g *goCacheWrapper) Close() error { return nil }
