// Package cache stores syllable counts keyed by normalized word.
//
// Entries never expire and are never evicted. Concurrent writers may race on
// the same missing word; every backend treats Put as an upsert, so the last
// write wins and both writers carry the same count.
package cache

import (
	"context"
	"fmt"

	"haikubot/internal/config"
	"haikubot/internal/db"
	"haikubot/internal/models"
)

// Store is the get/put contract the syllable oracle relies on.
type Store interface {
	// Get returns the entry for word, or nil without error on a miss.
	Get(ctx context.Context, word string) (*models.CacheEntry, error)
	// Put stores entry, replacing any previous entry for the same word.
	Put(ctx context.Context, entry models.CacheEntry) error
}

// Reviewer is implemented by backends that can enumerate flagged entries.
type Reviewer interface {
	ListNeedingReview(ctx context.Context, limit int) ([]models.CacheEntry, error)
	CountNeedingReview(ctx context.Context) (int64, error)
}

// Pinger is implemented by backends with a reachability check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend is an opened Store that owns a connection.
type Backend interface {
	Store
	Close() error
}

// Open builds the backend named by cfg.CacheBackend.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.CacheBackend {
	case config.BackendPostgres:
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			database.Close()
			return nil, err
		}
		return NewPostgres(database), nil
	case config.BackendSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	case config.BackendRedis:
		return OpenRedis(cfg.RedisURL)
	case config.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
