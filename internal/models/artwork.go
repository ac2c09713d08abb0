// Package models defines the canonical data shapes shared by all gallerie
// components: artworks in their uniform shape regardless of source, user
// accounts, and artwork submissions.
package models

import "github.com/gallerie-app/gallerie/internal/common"

// Category classifies an artwork.
type Category string

const (
	CategoryPainting    Category = "painting"
	CategorySculpture   Category = "sculpture"
	CategoryPhotography Category = "photography"
	CategoryDigital     Category = "digital"
	CategoryMixed       Category = "mixed"
	CategoryOther       Category = "other"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategoryPainting,
		CategorySculpture,
		CategoryPhotography,
		CategoryDigital,
		CategoryMixed,
		CategoryOther,
	}
}

// ParseCategory validates a user-supplied category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", common.ErrInvalidCategory
}

// Artwork is a displayed work in the canonical shape all sources are
// transformed into. JSON field names match the persisted format of the
// original application, so existing stored data remains readable.
//
// Invariant: IsUserSubmitted is true iff SubmittedBy and SubmittedAt are
// both set.
type Artwork struct {
	// ID is an opaque unique string: "harvard_<n>" or "fallback_<n>" for
	// externally sourced items, a timestamp-derived string for submissions.
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Description string   `json:"description"`
	Category    Category `json:"category"`

	// Year the work was created; 0 means unknown.
	Year int `json:"year,omitempty"`

	// Image is a URL or a data: URI.
	Image string `json:"image"`
	Tags  []string `json:"tags"`

	IsUserSubmitted bool `json:"isUserSubmitted"`

	// SubmittedBy is the submitting User's id; set iff user-submitted.
	SubmittedBy string `json:"submittedBy,omitempty"`
	// SubmittedAt is an RFC 3339 timestamp; set iff user-submitted.
	SubmittedAt string `json:"submittedAt,omitempty"`
}

// Submission carries the user-editable fields of an artwork. A partially
// filled Submission doubles as a draft (at most one per user).
type Submission struct {
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Year        int      `json:"year,omitempty"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}
