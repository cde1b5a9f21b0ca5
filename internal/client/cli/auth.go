package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/caojohnny91/hoot-client/internal/client/gateway"
	"github.com/caojohnny91/hoot-client/internal/client/models"
	"github.com/caojohnny91/hoot-client/internal/client/services"
)

func (a *App) readCredentials(ctx context.Context) (models.Credentials, error) {
	prompt := "Enter username"
	if last := a.auth.LastUsername(ctx); last != "" {
		username, err := GetDefaultedText(a.reader, prompt, last, a.out)
		if err != nil {
			return models.Credentials{}, err
		}
		password, err := GetPassword(a.out)
		if err != nil {
			return models.Credentials{}, err
		}
		return models.Credentials{Username: username, Password: password}, nil
	}

	username, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{Username: username, Password: password}, nil
}

func (a *App) signUp(ctx context.Context) {
	creds, err := a.readCredentials(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.auth.SignUp(ctx, creds)
	if err != nil {
		a.printAuthError(err)
		return
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Username)
	a.activate(ctx)
}

func (a *App) signIn(ctx context.Context) {
	creds, err := a.readCredentials(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.auth.SignIn(ctx, creds)
	if err != nil {
		a.printAuthError(err)
		return
	}

	fmt.Fprintf(a.out, "Signed in as %s.\n", user.Username)
	a.activate(ctx)
}

func (a *App) signOut(ctx context.Context) {
	if err := a.auth.SignOut(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Signed out.")
	a.activate(ctx)
}

func (a *App) whoami() {
	if a.user == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}
	fmt.Fprintf(a.out, "%s (%s)\n", a.user.Username, a.user.ID)
}

func (a *App) printAuthError(err error) {
	var authErr *services.AuthError
	if errors.As(err, &authErr) {
		if errors.Is(err, gateway.ErrUnavailable) {
			fmt.Fprintln(a.out, "Server unavailable, try again later.")
			return
		}
		fmt.Fprintf(a.out, "%v\n", authErr)
		return
	}
	fmt.Fprintf(a.out, "error: %v\n", err)
}
