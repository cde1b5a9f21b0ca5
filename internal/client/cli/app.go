// Package cli is the terminal front end of the hoot client: a REPL that
// maps commands to services and keeps authoring controls gated to the
// owning author. It renders state, it never owns it; the cache and the
// auth session are the source of truth.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/caojohnny91/hoot-client/internal/client/cache"
	"github.com/caojohnny91/hoot-client/internal/client/config"
	"github.com/caojohnny91/hoot-client/internal/client/gateway"
	"github.com/caojohnny91/hoot-client/internal/client/models"
	"github.com/caojohnny91/hoot-client/internal/client/services"
	"github.com/caojohnny91/hoot-client/internal/client/storage"
	"github.com/caojohnny91/hoot-client/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	hoots  *services.HootService
	loader *services.SessionLoader

	// user mirrors the last resolved session identity; nil is anonymous.
	user *models.User

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing database", "error", err)
		return nil, err
	}

	apiClient := gateway.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout, services.NewTokenSource(db), log)

	hootCache := cache.New(log)
	auth := services.NewAuthService(apiClient, db, log)
	hoots := services.NewHootService(apiClient, hootCache, log)
	loader := services.NewSessionLoader(auth, hoots, log)

	return &App{
		config: c,
		auth:   auth,
		hoots:  hoots,
		loader: loader,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// activate re-resolves the session and brings the cache in line with it.
// Called at startup and after every sign-in/sign-out transition.
func (a *App) activate(ctx context.Context) {
	user, err := a.loader.Activate(ctx)
	a.user = user
	if err != nil {
		a.log.Error(ctx, "loading hoots", "error", err)
	}
}

func (a *App) Run(ctx context.Context) {
	a.activate(ctx)
	a.Root(ctx)
}
