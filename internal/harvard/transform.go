package harvard

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gallerie-app/gallerie/internal/models"
)

// Defaults applied while transforming records into the canonical shape.
const (
	idPrefix           = "harvard_"
	defaultTitle       = "Untitled"
	defaultArtist      = "Unknown Artist"
	defaultDescription = "A beautiful artwork from the Harvard Art Museums collection."
)

// Tags appended to every transformed record.
const (
	tagTraditionalMedium = "traditional-medium"
	tagMuseumCollection  = "museum-collection"
	tagHarvard           = "harvard"
)

// yearPattern matches the first plausible 4-digit creation year (1500–2029)
// inside a free-text "dated" value such as "circa 1875-1880".
var yearPattern = regexp.MustCompile(`\b(1[5-9]\d{2}|20[0-2]\d)\b`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// TransformRecords converts API records into canonical artworks. Records
// without a primary image URL are dropped.
func TransformRecords(records []Record) []models.Artwork {
	artworks := make([]models.Artwork, 0, len(records))
	for _, r := range records {
		if r.PrimaryImageURL == "" {
			continue
		}
		artworks = append(artworks, transformRecord(r))
	}
	return artworks
}

func transformRecord(r Record) models.Artwork {
	title := r.Title
	if title == "" {
		title = defaultTitle
	}

	artist := defaultArtist
	if len(r.People) > 0 && r.People[0].Name != "" {
		artist = r.People[0].Name
	}

	description := r.Description
	if description == "" {
		description = defaultDescription
	}

	return models.Artwork{
		ID:              fmt.Sprintf("%s%d", idPrefix, r.ID),
		Title:           title,
		Artist:          artist,
		Description:     description,
		Category:        mapClassification(r.Classification),
		Year:            extractYear(r.Dated),
		Image:           r.PrimaryImageURL,
		Tags:            generateTags(r),
		IsUserSubmitted: false,
	}
}

// mapClassification derives a category from a case-insensitive substring
// match against the record's classification field.
func mapClassification(classification string) models.Category {
	if classification == "" {
		return models.CategoryOther
	}

	lower := strings.ToLower(classification)
	switch {
	case strings.Contains(lower, "painting"):
		return models.CategoryPainting
	case strings.Contains(lower, "photograph"):
		return models.CategoryPhotography
	case strings.Contains(lower, "sculpture"):
		return models.CategorySculpture
	case strings.Contains(lower, "digital"):
		return models.CategoryDigital
	default:
		return models.CategoryOther
	}
}

// extractYear returns the first 4-digit year in range found in dated,
// or 0 when there is none.
func extractYear(dated string) int {
	match := yearPattern.FindString(dated)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

func generateTags(r Record) []string {
	var tags []string

	if r.Classification != "" {
		tags = append(tags, normalizeTag(r.Classification))
	}
	if r.Culture != "" {
		tags = append(tags, normalizeTag(r.Culture))
	}
	if r.Medium != "" {
		tags = append(tags, tagTraditionalMedium)
	}

	return append(tags, tagMuseumCollection, tagHarvard)
}

// normalizeTag lowercases a value and collapses whitespace runs to hyphens.
func normalizeTag(s string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(s), "-")
}
