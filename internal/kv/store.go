// Package kv provides the persistent key-value store backing gallerie's
// durable state (submitted artworks, registered users, the current session
// and drafts). It plays the role browser localStorage played in the original
// application: string keys, JSON payloads, last-write-wins.
//
// Backends: SQLite (default), Postgres, Redis, and an in-memory map for
// tests. All of them store raw bytes; JSON (de)serialization with a
// default-value fallback lives in GetJSON/SetJSON.
package kv

import "context"

// Store is a minimal byte-oriented key-value store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites any prior value.
//   - Delete is a no-op for absent keys.
//
// No transactional guarantees; concurrent writers race, last write wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
