// Package postgres embeds goose migrations for the Postgres key-value store.
package postgres

import "embed"

//go:embed *.sql
var Migrations embed.FS
