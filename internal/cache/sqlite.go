package cache

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "modernc.org/sqlite"

	"haikubot/internal/models"
	"haikubot/migrations"
)

// SQLite stores entries in a local database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// syllables schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	schema, err := fs.ReadFile(migrations.FS, migrations.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// SQLite allows a single writer; serialise through one connection.
	database.SetMaxOpenConns(1)

	if _, err := database.ExecContext(ctx, string(schema)); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: database}, nil
}

func (s *SQLite) Get(ctx context.Context, word string) (*models.CacheEntry, error) {
	var e models.CacheEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT word, syllables, needs_review
		FROM syllables
		WHERE word = ?
	`, word).Scan(&e.Word, &e.Syllables, &e.NeedsReview)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLite) Put(ctx context.Context, entry models.CacheEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO syllables (word, syllables, needs_review)
		VALUES (?, ?, ?)
		ON CONFLICT (word) DO UPDATE
		SET syllables = excluded.syllables, needs_review = excluded.needs_review
	`, entry.Word, entry.Syllables, entry.NeedsReview)
	return err
}

func (s *SQLite) ListNeedingReview(ctx context.Context, limit int) ([]models.CacheEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT word, syllables, needs_review
		FROM syllables
		WHERE needs_review
		ORDER BY word
		LIMIT ?
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

func (s *SQLite) CountNeedingReview(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM syllables WHERE needs_review`).Scan(&n)
	return n, err
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
