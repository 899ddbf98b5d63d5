package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"haikubot/internal/models"
)

// GetSyllables returns the cached entry for a normalized word.
func (d *DB) GetSyllables(ctx context.Context, word string) (*models.CacheEntry, error) {
	var e models.CacheEntry
	err := d.Pool.QueryRow(ctx, `
		SELECT word, syllables, needs_review
		FROM syllables
		WHERE word = $1
	`, word).Scan(&e.Word, &e.Syllables, &e.NeedsReview)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWordNotFound
		}
		return nil, err
	}
	return &e, nil
}

// UpsertSyllables stores an entry, replacing any existing row for the word.
// Concurrent writers for the same word are expected to carry the same values.
func (d *DB) UpsertSyllables(ctx context.Context, e models.CacheEntry) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO syllables (word, syllables, needs_review)
		VALUES ($1, $2, $3)
		ON CONFLICT (word) DO UPDATE
		SET syllables = EXCLUDED.syllables, needs_review = EXCLUDED.needs_review
	`, e.Word, e.Syllables, e.NeedsReview)
	return err
}

// CountWordsNeedingReview returns how many entries are flagged for review.
func (d *DB) CountWordsNeedingReview(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM syllables WHERE needs_review`).Scan(&n)
	return n, err
}

// ListWordsNeedingReview returns flagged entries in word order.
func (d *DB) ListWordsNeedingReview(ctx context.Context, limit int) ([]models.CacheEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT word, syllables, needs_review
		FROM syllables
		WHERE needs_review
		ORDER BY word
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.CacheEntry
	for rows.Next() {
		var e models.CacheEntry
		if err := rows.Scan(&e.Word, &e.Syllables, &e.NeedsReview); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
