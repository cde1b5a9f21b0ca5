package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Hoot CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "hoot %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "signup", "register":
			a.signUp(ctx)
		case "signin", "login":
			a.signIn(ctx)
		case "signout", "logout":
			a.signOut(ctx)
		case "whoami":
			a.whoami()
		case "list", "l":
			a.list(ctx)
		case "show":
			a.show(ctx, args)
		case "create":
			a.create(ctx)
		case "edit":
			a.edit(ctx, args)
		case "delete":
			a.deleteHoot(ctx, args)
		case "comment":
			a.addComment(ctx, args)
		case "editcomment":
			a.editComment(ctx, args)
		case "delcomment":
			a.deleteComment(ctx, args)
		case "refresh":
			a.refresh(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: list, show <id>, create, edit <id>, delete <id>,")
		fmt.Fprintln(a.out, "  comment <hootId>, editcomment <hootId> <commentId>, delcomment <hootId> <commentId>,")
		fmt.Fprintln(a.out, "  refresh, whoami, signout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: signup, signin, exit")
	}
}

// requireLogin gates authenticated-only commands. The backend enforces the
// same rule; this just avoids a guaranteed 401 round-trip.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please sign in first.")
	return false
}
