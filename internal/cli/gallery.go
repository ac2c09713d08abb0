package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gallerie-app/gallerie/internal/common"
	"github.com/gallerie-app/gallerie/internal/gallery"
	"github.com/gallerie-app/gallerie/internal/models"
)

// Gallery lists the collection. Optional args: a category filter
// (painting, sculpture, ... or "all") followed by a sort order
// (newest, oldest, artist, popular).
func (a *App) Gallery(ctx context.Context, args []string) error {
	filter := gallery.FilterAll
	sortOrder := gallery.SortNewest

	if len(args) > 0 {
		if args[0] != gallery.FilterAll {
			if _, err := models.ParseCategory(args[0]); err != nil {
				printlnFn("Unknown category:", args[0], "- try one of:", categoryList())
				return nil
			}
		}
		filter = args[0]
	}
	if len(args) > 1 {
		sortOrder = args[1]
	}

	a.printArtworks(a.repo.FilteredArtworks(ctx, filter, sortOrder, ""))
	return nil
}

// Search runs a free-text query over titles, artists, descriptions and tags.
func (a *App) Search(ctx context.Context, query string) error {
	a.printArtworks(a.repo.FilteredArtworks(ctx, gallery.FilterAll, "", query))
	return nil
}

// Show prints one artwork in full.
func (a *App) Show(ctx context.Context, id string) error {
	art, err := a.repo.ArtworkByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No artwork with id", id)
			return nil
		}
		return err
	}

	printlnFn(art.Title)
	printlnFn("  id:      ", art.ID)
	printlnFn("  artist:  ", art.Artist)
	printlnFn("  category:", string(art.Category))
	if art.Year != 0 {
		printlnFn("  year:    ", art.Year)
	}
	if len(art.Tags) > 0 {
		printlnFn("  tags:    ", strings.Join(art.Tags, ", "))
	}
	printlnFn("  image:   ", truncate(art.Image, 80))
	if art.IsUserSubmitted {
		printlnFn("  submitted:", art.SubmittedAt)
	}
	printlnFn("")
	printlnFn(art.Description)
	return nil
}

// Mine lists the current user's submissions.
func (a *App) Mine(ctx context.Context) error {
	user := a.auth.CurrentUser(ctx)
	if user == nil {
		printlnFn("Log in to see your submissions.")
		return common.ErrNotLoggedIn
	}

	mine := a.repo.UserArtworks(ctx, user.ID)
	if len(mine) == 0 {
		printlnFn("You have not submitted anything yet.")
		return nil
	}
	a.printArtworks(mine)
	return nil
}

// Delete removes one of the current user's submissions. Artworks from the
// museum collection and other users' submissions cannot be removed.
func (a *App) Delete(ctx context.Context, id string) error {
	user := a.auth.CurrentUser(ctx)
	if user == nil {
		printlnFn("Log in to delete your submissions.")
		return common.ErrNotLoggedIn
	}

	if a.repo.DeleteUserArtwork(ctx, id, user.ID) {
		printlnFn("Deleted", id)
	} else {
		printlnFn("Nothing deleted: not your submission or unknown id.")
	}
	return nil
}

func (a *App) printArtworks(artworks []models.Artwork) {
	if len(artworks) == 0 {
		printlnFn("No artworks found.")
		return
	}
	for _, art := range artworks {
		year := "----"
		if art.Year != 0 {
			year = fmt.Sprintf("%4d", art.Year)
		}
		marker := " "
		if art.IsUserSubmitted {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %-14s %s  %s / %s", marker, art.ID, year, truncate(art.Title, 32), art.Artist))
	}
	printlnFn(fmt.Sprintf("%d artwork(s); * = user submission", len(artworks)))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func categoryList() string {
	cats := models.Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
