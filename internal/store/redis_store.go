package store

import (
	"context"
	"errors"

	"github.com/healthybites-next/internal/cache"
	"github.com/healthybites-next/internal/constants"
	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/models"
)

// RedisStore keeps the document under a single redis key, the production
// KV mode. An empty key is seeded with the initial data on first read.
type RedisStore struct{}

// NewRedisStore creates a redis-backed store using the shared client.
func NewRedisStore() *RedisStore {
	return &RedisStore{}
}

// ReadAll fetches the document; misses seed and return the initial data,
// failures log and fall back to it.
func (s *RedisStore) ReadAll(ctx context.Context) (*models.Document, error) {
	var doc models.Document
	hit, err := cache.GetJSON(ctx, constants.DocumentKey, &doc)
	if err != nil {
		logger.Warnw("store_redis_read_failed", "key", constants.DocumentKey, "error", err)
		return InitialDocument(), nil
	}
	if !hit {
		initial := InitialDocument()
		if err := cache.SetJSON(ctx, constants.DocumentKey, initial, 0); err != nil {
			logger.Warnw("store_redis_seed_failed", "key", constants.DocumentKey, "error", err)
		}
		return initial, nil
	}
	return &doc, nil
}

// WriteAll replaces the whole document.
func (s *RedisStore) WriteAll(ctx context.Context, doc *models.Document) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	if !cache.Enabled() {
		return errors.New("redis store unavailable")
	}
	return cache.SetJSON(ctx, constants.DocumentKey, doc, 0)
}
