package main

import (
	"context"
	"log"
	"os"

	"github.com/gallerie-app/gallerie/internal/buildinfo"
	"github.com/gallerie-app/gallerie/internal/cli"
	"github.com/gallerie-app/gallerie/internal/config"
	"github.com/gallerie-app/gallerie/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
