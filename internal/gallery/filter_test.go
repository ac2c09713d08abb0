package gallery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerie-app/gallerie/internal/kv"
	"github.com/gallerie-app/gallerie/internal/models"
)

func fixtureArtworks() []models.Artwork {
	return []models.Artwork{
		{ID: "harvard_1", Title: "Harbour at Dusk", Artist: "Claude Monet", Description: "Boats at rest.", Category: models.CategoryPainting, Year: 1874, Tags: []string{"impressionism", "harbour"}},
		{ID: "harvard_2", Title: "Steel and Glass", Artist: "Berenice Abbott", Description: "A skyscraper canyon.", Category: models.CategoryPhotography, Year: 1936, Tags: []string{"urban", "architecture"}},
		{ID: "harvard_3", Title: "Undated Study", Artist: "Anonymous", Description: "Charcoal sketch.", Category: models.CategoryPainting, Year: 0, Tags: []string{"study"}},
		{ID: "local_1", Title: "Neon Alley", Artist: "Zoe Tanaka", Description: "Night photography.", Category: models.CategoryPhotography, Year: 2023, Tags: []string{"neon", "night"}, IsUserSubmitted: true, SubmittedBy: "u1", SubmittedAt: "2024-01-01T00:00:00Z"},
		{ID: "local_2", Title: "Clay Vessel", Artist: "Abe Ito", Description: "Hand-thrown ceramic.", Category: models.CategorySculpture, Year: 1936, Tags: []string{"ceramic"}, IsUserSubmitted: true, SubmittedBy: "u2", SubmittedAt: "2024-01-02T00:00:00Z"},
	}
}

func ids(artworks []models.Artwork) []string {
	out := make([]string, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, a.ID)
	}
	return out
}

func filteredFixture(t *testing.T, filter, sortOrder, query string) []models.Artwork {
	t.Helper()
	src := &stubSource{artworks: fixtureArtworks()[:3]}
	r, store := newRepo(t, src)
	ctx := context.Background()

	// persist the two local pieces so the repository loads them as user-submitted
	locals := fixtureArtworks()[3:]
	require.NoError(t, kv.SetJSON(ctx, store, artworksKey, locals))

	return r.FilteredArtworks(ctx, filter, sortOrder, query)
}

func TestFilteredArtworks_AllNewest(t *testing.T) {
	got := filteredFixture(t, FilterAll, SortNewest, "")
	// descending by year, missing year (0) last; stable for the 1936 tie
	assert.Equal(t, []string{"local_1", "harvard_2", "local_2", "harvard_1", "harvard_3"}, ids(got))
}

func TestFilteredArtworks_Oldest(t *testing.T) {
	got := filteredFixture(t, FilterAll, SortOldest, "")
	assert.Equal(t, []string{"harvard_3", "harvard_1", "harvard_2", "local_2", "local_1"}, ids(got))
}

func TestFilteredArtworks_ArtistOrder(t *testing.T) {
	got := filteredFixture(t, FilterAll, SortArtist, "")
	assert.Equal(t, []string{"local_2", "harvard_3", "harvard_2", "harvard_1", "local_1"}, ids(got))
}

func TestFilteredArtworks_PopularPartitionsUserSubmittedFirst(t *testing.T) {
	got := filteredFixture(t, FilterAll, SortPopular, "")

	require.Len(t, got, 5)
	assert.True(t, got[0].IsUserSubmitted)
	assert.True(t, got[1].IsUserSubmitted)
	// within each group, newest first
	assert.Equal(t, []string{"local_1", "local_2", "harvard_2", "harvard_1", "harvard_3"}, ids(got))
}

func TestFilteredArtworks_UnknownSortKeepsMergedOrder(t *testing.T) {
	got := filteredFixture(t, FilterAll, "featured", "")
	assert.Equal(t, []string{"harvard_1", "harvard_2", "harvard_3", "local_1", "local_2"}, ids(got))
}

func TestFilteredArtworks_CategoryFilter(t *testing.T) {
	got := filteredFixture(t, "photography", SortNewest, "")
	assert.Equal(t, []string{"local_1", "harvard_2"}, ids(got))
}

func TestFilteredArtworks_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "title match", query: "HARBOUR", want: []string{"harvard_1"}},
		{name: "artist match", query: "monet", want: []string{"harvard_1"}},
		{name: "description match", query: "skyscraper", want: []string{"harvard_2"}},
		{name: "tag match", query: "neon", want: []string{"local_1"}},
		{name: "substring across fields", query: "an", want: []string{"harvard_2", "harvard_3", "local_1", "local_2"}},
		{name: "no match", query: "xyzzy", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filteredFixture(t, FilterAll, "", tt.query)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilteredArtworks_BlankQueryIsNoOp(t *testing.T) {
	all := filteredFixture(t, FilterAll, "", "")
	spaces := filteredFixture(t, FilterAll, "", "   \t ")
	assert.Equal(t, ids(all), ids(spaces))
	assert.Len(t, all, 5)
}

func TestFilteredArtworks_SearchRunsBeforeCategoryFilter(t *testing.T) {
	// "night" matches local_1 (photography) only; category filter then keeps it
	got := filteredFixture(t, "photography", SortNewest, "night")
	assert.Equal(t, []string{"local_1"}, ids(got))
}
