package cli

import (
	"context"
	"fmt"

	"github.com/caojohnny91/hoot-client/internal/client/models"
)

func (a *App) addComment(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: comment <hootId>")
		return
	}

	text, err := GetMultiline(a.reader, "Your comment", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	comment, err := a.hoots.AddComment(ctx, args[0], models.CommentDraft{Text: text})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Added comment %s.\n", comment.ID)
}

func (a *App) editComment(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: editcomment <hootId> <commentId>")
		return
	}
	hootID, commentID := args[0], args[1]

	// The comment is addressed directly as a sub-resource; no need to pull
	// the whole hoot to edit one comment.
	comment, err := a.hoots.GetComment(ctx, hootID, commentID)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if !models.CanMutate(comment.Author, a.user) {
		fmt.Fprintln(a.out, "Only the author can edit this comment.")
		return
	}

	text, err := GetDefaultedText(a.reader, "Your comment", comment.Text, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if _, err := a.hoots.UpdateComment(ctx, hootID, commentID, models.CommentDraft{Text: text}); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Updated comment %s.\n", commentID)
}

func (a *App) deleteComment(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: delcomment <hootId> <commentId>")
		return
	}
	hootID, commentID := args[0], args[1]

	if hoot, ok := a.hoots.Cache().Get(hootID); ok {
		for _, c := range hoot.Comments {
			if c.ID == commentID && !models.CanMutate(c.Author, a.user) {
				fmt.Fprintln(a.out, "Only the author can delete this comment.")
				return
			}
		}
	}

	if err := a.hoots.DeleteComment(ctx, hootID, commentID); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted comment %s.\n", commentID)
}
