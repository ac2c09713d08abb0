// Package sqlite embeds goose migrations for the SQLite key-value store.
package sqlite

import "embed"

//go:embed *.sql
var Migrations embed.FS
