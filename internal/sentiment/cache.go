package sentiment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/spacesedan/wordsentiment/internal/models"
)

const CACHE_KEY_PREFIX = "sentiment:"

// CachedAnalyzer consults a cache before delegating to the wrapped
// analyzer. Cache failures are logged and otherwise ignored.
type CachedAnalyzer struct {
	next    Analyzer
	cache   Cache
	backend string
}

// NewCachedAnalyzer scopes cached labels to backend so labels from
// different backends never answer for each other.
func NewCachedAnalyzer(next Analyzer, cache Cache, backend string) *CachedAnalyzer {
	return &CachedAnalyzer{next: next, cache: cache, backend: backend}
}

func CacheKey(backend, text string) string {
	sum := sha256.Sum256([]byte(text))
	return CACHE_KEY_PREFIX + backend + ":" + hex.EncodeToString(sum[:])
}

func (c *CachedAnalyzer) Analyze(ctx context.Context, text string) (models.Sentiment, error) {
	if text == "" {
		return c.next.Analyze(ctx, text)
	}

	key := CacheKey(c.backend, text)
	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("[CachedAnalyzer] Cache lookup failed",
			slog.String("error", err.Error()))
	} else if ok {
		slog.Info("[CachedAnalyzer] Cache hit", slog.String("key", key))
		return models.Sentiment(cached), nil
	}

	result, err := c.next.Analyze(ctx, text)
	if err != nil {
		return result, err
	}

	if err := c.cache.Set(ctx, key, result.String()); err != nil {
		slog.Warn("[CachedAnalyzer] Cache store failed",
			slog.String("error", err.Error()))
	}

	return result, nil
}

func (c *CachedAnalyzer) Close() error {
	c.cache.Close()
	return c.next.Close()
}
