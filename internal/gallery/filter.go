package gallery

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gallerie-app/gallerie/internal/models"
)

// FilterAll selects every category.
const FilterAll = "all"

// Sort orders accepted by FilteredArtworks. Any other value leaves the
// merged order untouched.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortArtist  = "artist"
	SortPopular = "popular"
)

// FilteredArtworks runs the search → category filter → sort pipeline over
// the merged collection, in that exact order. Ties keep the relative order
// produced by the previous step.
func (r *Repository) FilteredArtworks(ctx context.Context, filter, sortOrder, searchQuery string) []models.Artwork {
	artworks := r.AllArtworks(ctx)
	artworks = applySearch(artworks, searchQuery)
	artworks = applyCategoryFilter(artworks, filter)
	applySort(artworks, sortOrder)
	return artworks
}

// applySearch keeps artworks with a case-insensitive substring match in
// title, artist, description or any tag. A blank query keeps everything.
func applySearch(artworks []models.Artwork, searchQuery string) []models.Artwork {
	if strings.TrimSpace(searchQuery) == "" {
		return artworks
	}
	query := strings.ToLower(searchQuery)

	result := artworks[:0]
	for _, a := range artworks {
		if matchesQuery(a, query) {
			result = append(result, a)
		}
	}
	return result
}

func matchesQuery(a models.Artwork, query string) bool {
	if strings.Contains(strings.ToLower(a.Title), query) ||
		strings.Contains(strings.ToLower(a.Artist), query) ||
		strings.Contains(strings.ToLower(a.Description), query) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func applyCategoryFilter(artworks []models.Artwork, filter string) []models.Artwork {
	if filter == FilterAll || filter == "" {
		return artworks
	}

	result := artworks[:0]
	for _, a := range artworks {
		if string(a.Category) == filter {
			result = append(result, a)
		}
	}
	return result
}

func applySort(artworks []models.Artwork, sortOrder string) {
	switch sortOrder {
	case SortNewest:
		sort.SliceStable(artworks, func(i, j int) bool {
			return artworks[i].Year > artworks[j].Year
		})
	case SortOldest:
		sort.SliceStable(artworks, func(i, j int) bool {
			return artworks[i].Year < artworks[j].Year
		})
	case SortArtist:
		c := collate.New(language.Und)
		sort.SliceStable(artworks, func(i, j int) bool {
			return c.CompareString(artworks[i].Artist, artworks[j].Artist) < 0
		})
	case SortPopular:
		// User-submitted pieces come first, newest within each group.
		sort.SliceStable(artworks, func(i, j int) bool {
			if artworks[i].IsUserSubmitted != artworks[j].IsUserSubmitted {
				return artworks[i].IsUserSubmitted
			}
			return artworks[i].Year > artworks[j].Year
		})
	}
}
