package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/storage/redis/v3"

	"haikubot/internal/models"
)

const redisKeyPrefix = "syllables:"

// byteStorage is the subset of fiber.Storage the Redis backend uses.
type byteStorage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Close() error
}

// Redis stores entries as JSON values under "syllables:<word>".
// It cannot enumerate the review backlog.
type Redis struct {
	storage byteStorage
}

// OpenRedis connects to the Redis server at url. The storage driver panics
// on a malformed URL or a failed initial ping; both are returned as errors.
func OpenRedis(url string) (r *Redis, err error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("connect to redis: %v", p)
		}
	}()
	return NewRedis(redis.New(redis.Config{URL: url})), nil
}

// NewRedis wraps an existing storage.
func NewRedis(storage byteStorage) *Redis {
	return &Redis{storage: storage}
}

func (r *Redis) Get(_ context.Context, word string) (*models.CacheEntry, error) {
	raw, err := r.storage.Get(redisKeyPrefix + word)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var e models.CacheEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("corrupt cache entry for %q: %w", word, err)
	}
	return &e, nil
}

func (r *Redis) Put(_ context.Context, entry models.CacheEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	// Zero expiration keeps the key forever.
	return r.storage.Set(redisKeyPrefix+entry.Word, raw, 0)
}

func (r *Redis) Close() error {
	return r.storage.Close()
}
