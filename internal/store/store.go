package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthybites-next/internal/config"
	"github.com/healthybites-next/internal/models"
)

// Store persists the whole catalog document. ReadAll never propagates a
// backend failure: a missing or unreadable document falls back to the seeded
// initial data so the storefront stays serveable. WriteAll replaces the
// entire document and does propagate failure, because checkout must know
// when persistence did not happen.
type Store interface {
	ReadAll(ctx context.Context) (*models.Document, error)
	WriteAll(ctx context.Context, doc *models.Document) error
}

// New selects a backend from configuration.
func New(cfg *config.StoreConfig) (Store, error) {
	driver := ""
	if cfg != nil {
		driver = strings.ToLower(strings.TrimSpace(cfg.Driver))
	}
	switch driver {
	case "", "file":
		path := ""
		if cfg != nil {
			path = cfg.FilePath
		}
		return NewFileStore(path), nil
	case "redis":
		return NewRedisStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}
}
