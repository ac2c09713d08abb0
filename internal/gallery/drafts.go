package gallery

import (
	"context"

	"github.com/gallerie-app/gallerie/internal/kv"
	"github.com/gallerie-app/gallerie/internal/models"
)

// Drafts hold at most one partially filled submission per user. The whole
// map is persisted as a single value, matching the original storage layout,
// so the read-modify-write below runs under r.mu to keep two in-process
// writers from losing an entry. Cross-process writers remain last-write-wins,
// like every other key.

// SaveDraft stores the draft for userID, overwriting any previous one.
func (r *Repository) SaveDraft(ctx context.Context, draft models.Submission, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	drafts := kv.GetJSON(ctx, r.store, draftsKey, map[string]models.Submission{})
	drafts[userID] = draft
	return kv.SetJSON(ctx, r.store, draftsKey, drafts)
}

// LoadDraft returns the draft saved for userID, reporting whether one exists.
func (r *Repository) LoadDraft(ctx context.Context, userID string) (models.Submission, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drafts := kv.GetJSON(ctx, r.store, draftsKey, map[string]models.Submission{})
	draft, ok := drafts[userID]
	return draft, ok
}

// ClearDraft removes the draft for userID; a no-op when none exists.
func (r *Repository) ClearDraft(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	drafts := kv.GetJSON(ctx, r.store, draftsKey, map[string]models.Submission{})
	delete(drafts, userID)
	return kv.SetJSON(ctx, r.store, draftsKey, drafts)
}
