package cache

import (
	"context"
	"errors"

	"haikubot/internal/db"
	"haikubot/internal/models"
)

// Postgres stores entries in the syllables table.
type Postgres struct {
	db *db.DB
}

// NewPostgres wraps an open, migrated database.
func NewPostgres(database *db.DB) *Postgres {
	return &Postgres{db: database}
}

func (p *Postgres) Get(ctx context.Context, word string) (*models.CacheEntry, error) {
	e, err := p.db.GetSyllables(ctx, word)
	if errors.Is(err, db.ErrWordNotFound) {
		return nil, nil
	}
	return e, err
}

func (p *Postgres) Put(ctx context.Context, entry models.CacheEntry) error {
	return p.db.UpsertSyllables(ctx, entry)
}

func (p *Postgres) ListNeedingReview(ctx context.Context, limit int) ([]models.CacheEntry, error) {
	return p.db.ListWordsNeedingReview(ctx, limit)
}

func (p *Postgres) CountNeedingReview(ctx context.Context) (int64, error) {
	return p.db.CountWordsNeedingReview(ctx)
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func (p *Postgres) Close() error {
	p.db.Close()
	return nil
}
