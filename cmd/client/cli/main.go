package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/caojohnny91/hoot-client/internal/client/cli"
	"github.com/caojohnny91/hoot-client/internal/client/config"
	"github.com/caojohnny91/hoot-client/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = zl.Sync() }()

	app, err := cli.NewApp(cfg, logging.NewZapLogger(zl.Sugar()))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
