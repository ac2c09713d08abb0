package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON returns the value stored at key deserialized into T, or def when
// the key is absent, the read fails, or the stored bytes are not valid JSON
// for T. It never returns an error: corrupt or missing persisted state
// degrades to the caller-supplied default.
func GetJSON[T any](ctx context.Context, s Store, key string, def T) T {
	b, err := s.Get(ctx, key)
	if err != nil || b == nil {
		return def
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return def
	}
	return v
}

// SetJSON serializes v and stores it at key, overwriting any prior value.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.Set(ctx, key, b)
}
