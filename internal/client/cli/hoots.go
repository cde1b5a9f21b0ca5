package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/caojohnny91/hoot-client/internal/client/models"
)

func (a *App) list(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	hoots := a.hoots.Cache().Hoots()
	if len(hoots) == 0 {
		fmt.Fprintln(a.out, "No hoots yet.")
		return
	}

	for _, h := range hoots {
		fmt.Fprintf(a.out, "%s  [%s] %s — %s (%s)\n",
			h.ID, h.Category, h.Title, h.Author.Username, h.CreatedAt.Format("2006-01-02"))
	}
}

func (a *App) refresh(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	if err := a.hoots.Refresh(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.list(ctx)
}

func (a *App) show(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <hootId>")
		return
	}

	hoot, err := a.hoots.Get(ctx, args[0])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, strings.ToUpper(string(hoot.Category)))
	fmt.Fprintln(a.out, hoot.Title)
	fmt.Fprintf(a.out, "%s posted on %s\n", hoot.Author.Username, hoot.CreatedAt.Format("1/2/2006"))
	fmt.Fprintln(a.out, hoot.Text)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Comments")
	if len(hoot.Comments) == 0 {
		fmt.Fprintln(a.out, "There are no comments.")
		return
	}
	for _, c := range hoot.Comments {
		fmt.Fprintf(a.out, "%s  %s posted on %s\n", c.ID, c.Author.Username, c.CreatedAt.Format("1/2/2006"))
		fmt.Fprintf(a.out, "  %s\n", c.Text)
	}
}

func (a *App) readDraft(defaults models.HootDraft) (models.HootDraft, error) {
	title, err := GetDefaultedText(a.reader, "Title", defaults.Title, a.out)
	if err != nil {
		return models.HootDraft{}, err
	}

	text, err := GetMultiline(a.reader, "Text", a.out)
	if err != nil {
		return models.HootDraft{}, err
	}
	if text == "" {
		text = defaults.Text
	}

	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	category, err := GetDefaultedText(a.reader,
		"Category ("+strings.Join(names, ", ")+")", string(defaults.Category), a.out)
	if err != nil {
		return models.HootDraft{}, err
	}

	return models.HootDraft{Title: title, Text: text, Category: models.Category(category)}, nil
}

func (a *App) create(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	draft, err := a.readDraft(models.HootDraft{Category: models.CategoryNews})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	hoot, err := a.hoots.Create(ctx, draft)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Created hoot %s.\n", hoot.ID)
}

func (a *App) edit(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: edit <hootId>")
		return
	}

	hoot, err := a.hoots.Get(ctx, args[0])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if !models.CanMutate(hoot.Author, a.user) {
		fmt.Fprintln(a.out, "Only the author can edit this hoot.")
		return
	}

	draft, err := a.readDraft(models.HootDraft{Title: hoot.Title, Text: hoot.Text, Category: hoot.Category})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if _, err := a.hoots.Update(ctx, hoot.ID, draft); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Updated hoot %s.\n", hoot.ID)
}

func (a *App) deleteHoot(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: delete <hootId>")
		return
	}

	if hoot, ok := a.hoots.Cache().Get(args[0]); ok && !models.CanMutate(hoot.Author, a.user) {
		fmt.Fprintln(a.out, "Only the author can delete this hoot.")
		return
	}

	if err := a.hoots.Delete(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted hoot %s.\n", args[0])
}
