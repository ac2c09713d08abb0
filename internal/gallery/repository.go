// Package gallery implements the artwork repository: a merged view over the
// museum-sourced collection and locally submitted pieces, with filtering,
// sorting, search, submission, deletion and per-user drafts.
package gallery

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gallerie-app/gallerie/internal/common"
	"github.com/gallerie-app/gallerie/internal/kv"
	"github.com/gallerie-app/gallerie/internal/logging"
	"github.com/gallerie-app/gallerie/internal/models"
)

// Persisted key-value store keys.
const (
	artworksKey = "gallerie_artworks"
	draftsKey   = "gallerie_drafts"
)

// now is a test seam for timestamp-derived ids and submission times.
var now = time.Now

// Source supplies externally-owned artworks. Implemented by harvard.Client.
type Source interface {
	FetchArtworks(ctx context.Context, page, size int) ([]models.Artwork, error)
}

// Repository owns the two in-memory artwork lists. The external list is
// read-only and fetched once per process lifetime; the user-submitted list
// is mutable and persisted to the key-value store on every change. All
// methods are safe for concurrent use; a single mutex guards both lists,
// the load-once flag and the drafts read-modify-write.
type Repository struct {
	store  kv.Store
	source Source
	log    logging.Logger

	page     int
	pageSize int

	mu           sync.Mutex
	loaded       bool
	apiArtworks  []models.Artwork
	userArtworks []models.Artwork
}

func NewRepository(store kv.Store, source Source, pageSize int, log logging.Logger) *Repository {
	return &Repository{
		store:    store,
		source:   source,
		page:     1,
		pageSize: pageSize,
		log:      log.With("component", "gallery"),
	}
}

// Initialize loads both lists. It is idempotent: the first call does the
// work, later calls are no-ops. A Source error degrades to an empty external
// list; the harvard client already swallows its own failures into fallback
// data, so this path only covers errors escaping that layer.
func (r *Repository) Initialize(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)
}

// ensureLoaded must be called with r.mu held.
func (r *Repository) ensureLoaded(ctx context.Context) {
	if r.loaded {
		return
	}

	r.userArtworks = kv.GetJSON(ctx, r.store, artworksKey, []models.Artwork{})

	artworks, err := r.source.FetchArtworks(ctx, r.page, r.pageSize)
	if err != nil {
		r.log.Error(ctx, "failed to load external artworks", "error", err)
		artworks = nil
	}
	r.apiArtworks = artworks

	r.loaded = true
	r.log.Info(ctx, "repository initialized",
		"external", len(r.apiArtworks), "user_submitted", len(r.userArtworks))
}

// AllArtworks returns the merged collection, external artworks first.
func (r *Repository) AllArtworks(ctx context.Context) []models.Artwork {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)
	return r.mergedLocked()
}

// mergedLocked returns a fresh slice so callers can sort freely.
func (r *Repository) mergedLocked() []models.Artwork {
	merged := make([]models.Artwork, 0, len(r.apiArtworks)+len(r.userArtworks))
	merged = append(merged, r.apiArtworks...)
	return append(merged, r.userArtworks...)
}

// SubmitArtwork creates a user-submitted artwork from the submission data,
// appends it to the local list and persists the full list.
func (r *Repository) SubmitArtwork(ctx context.Context, sub models.Submission, userID string) (models.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	t := now()
	artwork := models.Artwork{
		ID:              strconv.FormatInt(t.UnixMilli(), 10),
		Title:           sub.Title,
		Artist:          sub.Artist,
		Description:     sub.Description,
		Category:        sub.Category,
		Year:            sub.Year,
		Image:           sub.Image,
		Tags:            sub.Tags,
		IsUserSubmitted: true,
		SubmittedBy:     userID,
		SubmittedAt:     t.UTC().Format(time.RFC3339),
	}

	r.userArtworks = append(r.userArtworks, artwork)
	if err := kv.SetJSON(ctx, r.store, artworksKey, r.userArtworks); err != nil {
		return models.Artwork{}, fmt.Errorf("failed to persist artworks: %w", err)
	}

	r.log.Info(ctx, "artwork submitted", "artwork_id", artwork.ID, "user_id", userID)
	return artwork, nil
}

// UserArtworks returns the user-submitted artworks with a matching
// SubmittedBy, in submission order.
func (r *Repository) UserArtworks(ctx context.Context, userID string) []models.Artwork {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	var result []models.Artwork
	for _, a := range r.userArtworks {
		if a.SubmittedBy == userID {
			result = append(result, a)
		}
	}
	return result
}

// ArtworkByID finds an artwork by exact id, searching the external list
// first. Returns common.ErrNotFound when no artwork matches.
func (r *Repository) ArtworkByID(ctx context.Context, id string) (*models.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	for _, a := range r.mergedLocked() {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, common.ErrNotFound
}

// DeleteUserArtwork removes the first user-submitted artwork matching both
// id and submitter, persists the list and reports whether anything was
// removed. A non-matching id, including an artwork owned by someone else,
// is a silent no-op returning false; ownership is enforced by the match
// itself.
func (r *Repository) DeleteUserArtwork(ctx context.Context, id, userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	for i, a := range r.userArtworks {
		if a.ID == id && a.SubmittedBy == userID {
			r.userArtworks = append(r.userArtworks[:i], r.userArtworks[i+1:]...)
			if err := kv.SetJSON(ctx, r.store, artworksKey, r.userArtworks); err != nil {
				r.log.Error(ctx, "failed to persist artworks after delete", "error", err)
			}
			r.log.Info(ctx, "artwork deleted", "artwork_id", id, "user_id", userID)
			return true
		}
	}
	return false
}
