package db

import "errors"

// Domain-level database error sentinels.
var (
	// Syllable cache errors
	ErrWordNotFound = errors.New("word not found")
)
