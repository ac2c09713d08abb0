package harvard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerie-app/gallerie/internal/models"
)

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name  string
		dated string
		want  int
	}{
		{name: "plain year", dated: "1920", want: 1920},
		{name: "circa range takes first match", dated: "circa 1875-1880", want: 1875},
		{name: "embedded in text", dated: "painted c. 1603 in Florence", want: 1603},
		{name: "lower bound", dated: "1500", want: 1500},
		{name: "upper bound", dated: "2029", want: 2029},
		{name: "below range ignored", dated: "1499", want: 0},
		{name: "above range ignored", dated: "2030", want: 0},
		{name: "no digits", dated: "Edo period", want: 0},
		{name: "empty", dated: "", want: 0},
		{name: "longer number not matched", dated: "18751", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractYear(tt.dated))
		})
	}
}

func TestMapClassification(t *testing.T) {
	tests := []struct {
		classification string
		want           models.Category
	}{
		{"Paintings", models.CategoryPainting},
		{"Oil Painting", models.CategoryPainting},
		{"Photographs", models.CategoryPhotography},
		{"photograph album", models.CategoryPhotography},
		{"Sculpture", models.CategorySculpture},
		{"Digital Art", models.CategoryDigital},
		{"Vessels", models.CategoryOther},
		{"", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.classification, func(t *testing.T) {
			assert.Equal(t, tt.want, mapClassification(tt.classification))
		})
	}
}

func TestGenerateTags(t *testing.T) {
	r := Record{
		Classification: "Oil Paintings",
		Culture:        "Dutch Golden Age",
		Medium:         "oil on canvas",
	}

	tags := generateTags(r)
	assert.Equal(t, []string{
		"oil-paintings",
		"dutch-golden-age",
		"traditional-medium",
		"museum-collection",
		"harvard",
	}, tags)
}

func TestGenerateTags_MinimalRecord(t *testing.T) {
	tags := generateTags(Record{})
	assert.Equal(t, []string{"museum-collection", "harvard"}, tags)
}

func TestTransformRecords_DropsRecordsWithoutImage(t *testing.T) {
	records := []Record{
		{ID: 1, Title: "Kept", PrimaryImageURL: "https://img.example/1.jpg"},
		{ID: 2, Title: "Dropped"},
	}

	artworks := TransformRecords(records)
	require.Len(t, artworks, 1)
	assert.Equal(t, "harvard_1", artworks[0].ID)
}

func TestTransformRecord_AppliesDefaults(t *testing.T) {
	artworks := TransformRecords([]Record{{ID: 42, PrimaryImageURL: "https://img.example/42.jpg"}})
	require.Len(t, artworks, 1)

	a := artworks[0]
	assert.Equal(t, "harvard_42", a.ID)
	assert.Equal(t, defaultTitle, a.Title)
	assert.Equal(t, defaultArtist, a.Artist)
	assert.Equal(t, defaultDescription, a.Description)
	assert.Equal(t, models.CategoryOther, a.Category)
	assert.Zero(t, a.Year)
	assert.False(t, a.IsUserSubmitted)
}

func TestTransformRecord_FullRecord(t *testing.T) {
	r := Record{
		ID:              100,
		Title:           "The Harvest",
		People:          []Person{{Name: "Jan Steen"}, {Name: "Ignored Second"}},
		Classification:  "Paintings",
		Dated:           "c. 1660",
		Description:     "A busy farm scene.",
		PrimaryImageURL: "https://img.example/100.jpg",
		Culture:         "Dutch",
		Medium:          "oil on panel",
	}

	artworks := TransformRecords([]Record{r})
	require.Len(t, artworks, 1)

	a := artworks[0]
	assert.Equal(t, "harvard_100", a.ID)
	assert.Equal(t, "The Harvest", a.Title)
	assert.Equal(t, "Jan Steen", a.Artist, "first associated person wins")
	assert.Equal(t, models.CategoryPainting, a.Category)
	assert.Equal(t, 1660, a.Year)
	assert.Equal(t, []string{"paintings", "dutch", "traditional-medium", "museum-collection", "harvard"}, a.Tags)
}
