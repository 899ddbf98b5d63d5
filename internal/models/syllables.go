package models

// CacheEntry is one cached syllable count, keyed by the normalized word.
// Syllables is always at least 1. NeedsReview marks counts the word service
// could not supply, left for a person to check.
type CacheEntry struct {
	Word        string `json:"word"`
	Syllables   int    `json:"syllables"`
	NeedsReview bool   `json:"needs_review"`
}
