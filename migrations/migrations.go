// Package migrations embeds the SQL schema for the syllable cache.
package migrations

import "embed"

// FS holds the migration files.
//
//go:embed *.sql
var FS embed.FS

// Schema is the migration that creates the syllables table. The SQL is
// portable enough to run unchanged on SQLite.
const Schema = "000001_create_syllables.up.sql"
