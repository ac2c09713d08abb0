package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gallerie-app/gallerie/internal/common"
	"github.com/gallerie-app/gallerie/internal/models"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Submit interactively collects an artwork submission. A saved draft, if
// any, pre-fills the prompts. The user can finish with an immediate
// submission or keep the result as a draft for later.
func (a *App) Submit(ctx context.Context) error {
	user := a.auth.CurrentUser(ctx)
	if user == nil {
		printlnFn("Log in to submit an artwork.")
		return common.ErrNotLoggedIn
	}

	sub, hadDraft := a.repo.LoadDraft(ctx, user.ID)
	if hadDraft {
		resume, err := getSimpleText(a.reader, fmt.Sprintf("Resume saved draft %q? (y/n)", sub.Title), os.Stdout)
		if err != nil {
			return err
		}
		if !strings.EqualFold(resume, "y") {
			sub = models.Submission{}
		}
	}

	if err := a.fillSubmission(&sub); err != nil {
		return err
	}

	if sub.Title == "" {
		printlnFn("A title is required; nothing saved.")
		return nil
	}

	done, err := getSimpleText(a.reader, "Submit now? (y = submit, n = save as draft)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(done, "y") {
		if err := a.repo.SaveDraft(ctx, sub, user.ID); err != nil {
			return err
		}
		printlnFn("Draft saved. Run 'submit' to resume.")
		return nil
	}

	if err := a.attachImage(ctx, &sub); err != nil {
		a.log.Error(ctx, "image upload failed", "error", err)
		printlnFn("Image upload failed:", err.Error())
		if saveErr := a.repo.SaveDraft(ctx, sub, user.ID); saveErr == nil {
			printlnFn("Your input was kept as a draft.")
		}
		return err
	}

	art, err := a.repo.SubmitArtwork(ctx, sub, user.ID)
	if err != nil {
		return err
	}
	if err := a.repo.ClearDraft(ctx, user.ID); err != nil {
		a.log.Error(ctx, "failed to clear draft", "error", err)
	}

	printlnFn("Submitted! Your artwork id is", art.ID)
	return nil
}

// Draft prints the saved draft without entering the submission flow.
func (a *App) Draft(ctx context.Context) error {
	user := a.auth.CurrentUser(ctx)
	if user == nil {
		printlnFn("Log in to see your draft.")
		return common.ErrNotLoggedIn
	}

	sub, ok := a.repo.LoadDraft(ctx, user.ID)
	if !ok {
		printlnFn("No draft saved.")
		return nil
	}

	printlnFn("Draft:", sub.Title)
	printlnFn("  artist:  ", sub.Artist)
	printlnFn("  category:", string(sub.Category))
	if sub.Year != 0 {
		printlnFn("  year:    ", sub.Year)
	}
	if len(sub.Tags) > 0 {
		printlnFn("  tags:    ", strings.Join(sub.Tags, ", "))
	}
	return nil
}

// fillSubmission walks the prompts, keeping existing (draft) values when the
// user submits an empty line.
func (a *App) fillSubmission(sub *models.Submission) error {
	title, err := a.promptWithDefault("Title", sub.Title)
	if err != nil {
		return err
	}
	sub.Title = title

	artist, err := a.promptWithDefault("Artist", sub.Artist)
	if err != nil {
		return err
	}
	sub.Artist = artist

	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		sub.Description = description
	}

	category, err := a.promptWithDefault("Category ("+categoryList()+")", string(sub.Category))
	if err != nil {
		return err
	}
	if category != "" {
		parsed, err := models.ParseCategory(category)
		if err != nil {
			printlnFn("Unknown category, keeping", orDash(string(sub.Category)))
		} else {
			sub.Category = parsed
		}
	}

	yearText, err := a.promptWithDefault("Year (empty if unknown)", yearString(sub.Year))
	if err != nil {
		return err
	}
	if yearText == "" {
		sub.Year = 0
	} else if year, err := strconv.Atoi(yearText); err == nil {
		sub.Year = year
	} else {
		printlnFn("Not a number, year left unset.")
		sub.Year = 0
	}

	image, err := a.promptWithDefault("Image (URL or local file path)", sub.Image)
	if err != nil {
		return err
	}
	sub.Image = image

	tagsText, err := a.promptWithDefault("Tags (comma-separated)", strings.Join(sub.Tags, ", "))
	if err != nil {
		return err
	}
	sub.Tags = splitTags(tagsText)

	return nil
}

// attachImage resolves the submission's image field: local files are read
// and pushed through the configured uploader, anything else is taken as an
// already-usable URL.
func (a *App) attachImage(ctx context.Context, sub *models.Submission) error {
	if sub.Image == "" || strings.Contains(sub.Image, "://") || strings.HasPrefix(sub.Image, "data:") {
		return nil
	}

	data, err := readFile(sub.Image)
	if err != nil {
		return fmt.Errorf("read image %s: %w", sub.Image, err)
	}

	url, err := a.uploader.Upload(ctx, data)
	if err != nil {
		return err
	}
	sub.Image = url
	return nil
}

func (a *App) promptWithDefault(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
