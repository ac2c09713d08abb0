package harvard

import "github.com/gallerie-app/gallerie/internal/models"

// FallbackArtworks returns the fixed six-item collection served whenever the
// museum API cannot be reached (or no API key is configured). IDs are stable
// so user-facing links keep working across runs.
func FallbackArtworks() []models.Artwork {
	return []models.Artwork{
		{
			ID:          "fallback_1",
			Title:       "Sunset Dreams",
			Artist:      "Elena Rodriguez",
			Description: "A vibrant abstract interpretation of a Mediterranean sunset, using bold oranges and deep purples to capture the emotion of twilight.",
			Category:    models.CategoryPainting,
			Year:        2023,
			Image:       "https://images.unsplash.com/photo-1541961017774-22349e4a1262?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=1000",
			Tags:        []string{"abstract", "sunset", "vibrant", "emotional"},
		},
		{
			ID:          "fallback_2",
			Title:       "Urban Symphony",
			Artist:      "Marcus Chen",
			Description: "A black and white photographic exploration of urban architecture, highlighting the rhythm and patterns found in city landscapes.",
			Category:    models.CategoryPhotography,
			Year:        2024,
			Image:       "https://images.unsplash.com/photo-1493514789931-586cb221d7a7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=1200",
			Tags:        []string{"architecture", "urban", "black-white", "geometric"},
		},
		{
			ID:          "fallback_3",
			Title:       "Digital Metamorphosis",
			Artist:      "Sarah Kim",
			Description: "A digital artwork exploring themes of transformation and growth through organic forms and flowing colors.",
			Category:    models.CategoryDigital,
			Year:        2023,
			Image:       "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=1000",
			Tags:        []string{"digital", "transformation", "organic", "colorful"},
		},
		{
			ID:          "fallback_4",
			Title:       "Timeless Form",
			Artist:      "Antonio Silva",
			Description: "A contemporary sculpture that plays with negative space and natural materials to create a sense of movement and flow.",
			Category:    models.CategorySculpture,
			Year:        2022,
			Image:       "https://images.unsplash.com/photo-1554188248-986adbb73be4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=1200",
			Tags:        []string{"sculpture", "contemporary", "minimal", "form"},
		},
		{
			ID:          "fallback_5",
			Title:       "Ocean Dreams",
			Artist:      "Maya Patel",
			Description: "An oil painting capturing the serene beauty of ocean waves with delicate brushwork and subtle color transitions.",
			Category:    models.CategoryPainting,
			Year:        2024,
			Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Tags:        []string{"ocean", "seascape", "oil-painting", "serene"},
		},
		{
			ID:          "fallback_6",
			Title:       "Neon Nights",
			Artist:      "David Wilson",
			Description: "A digital photograph capturing the electric energy of city nightlife through neon reflections and urban landscapes.",
			Category:    models.CategoryPhotography,
			Year:        2023,
			Image:       "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=1000",
			Tags:        []string{"neon", "night", "urban", "energy"},
		},
	}
}
