// Package syllable counts syllables per word, backed by the syllable cache
// and the word-information service.
package syllable

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"haikubot/internal/cache"
	"haikubot/internal/metrics"
	"haikubot/internal/models"
)

const (
	// SentinelCount is returned for links and emoji. It can never land on
	// a 5/12/17 boundary from a fresh line, so such tokens sink the haiku.
	SentinelCount = 8
	// DefaultCount is used when the word service has no syllable data.
	DefaultCount = 1
)

// trimChars are stripped from both ends of a word before lookup.
const trimChars = " '\"`_*~/:.!?,;#()@"

// Lookup is the word-information service.
type Lookup interface {
	Syllables(ctx context.Context, word string) (count int, ok bool, err error)
}

// Oracle answers syllable counts, consulting the cache before the service.
type Oracle struct {
	store   cache.Store
	lookup  Lookup
	metrics *metrics.Recorder
}

// NewOracle creates an oracle. rec may be nil.
func NewOracle(store cache.Store, lookup Lookup, rec *metrics.Recorder) *Oracle {
	return &Oracle{store: store, lookup: lookup, metrics: rec}
}

// IsSentinel reports whether a raw token is Slack link markup or an emoji
// shortcode.
func IsSentinel(raw string) bool {
	return strings.HasPrefix(raw, ":") || strings.HasPrefix(raw, "<http")
}

// Normalize strips surrounding punctuation and lower-cases a word to form its
// cache key.
func Normalize(raw string) string {
	return cases.Lower(language.English).String(strings.Trim(raw, trimChars))
}

// Count returns the syllable count for a raw token. A token with nothing left
// after normalization counts zero and is not looked up.
//
// On a cache miss the service answer is stored before returning, so each
// word reaches the service once. Two concurrent misses for the same word may
// both ask the service; both store the same entry.
func (o *Oracle) Count(ctx context.Context, raw string) (int, error) {
	if IsSentinel(raw) {
		o.metrics.Lookup(metrics.SourceSentinel)
		return SentinelCount, nil
	}

	word := Normalize(raw)
	if word == "" {
		return 0, nil
	}

	entry, err := o.store.Get(ctx, word)
	if err != nil {
		return 0, fmt.Errorf("cache get %q: %w", word, err)
	}
	if entry != nil {
		o.metrics.Lookup(metrics.SourceCache)
		return entry.Syllables, nil
	}

	count, ok, err := o.lookup.Syllables(ctx, word)
	if err != nil {
		return 0, fmt.Errorf("lookup %q: %w", word, err)
	}

	entry = &models.CacheEntry{Word: word, Syllables: count}
	if ok {
		o.metrics.Lookup(metrics.SourceService)
	} else {
		slog.Info("no syllable count, defaulting", "word", word, "syllables", DefaultCount)
		entry.Syllables = DefaultCount
		entry.NeedsReview = true
		o.metrics.Lookup(metrics.SourceFallback)
	}

	if err := o.store.Put(ctx, *entry); err != nil {
		return 0, fmt.Errorf("cache put %q: %w", word, err)
	}
	return entry.Syllables, nil
}
