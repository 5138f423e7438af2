package main

import (
	"context"
	"log"
	"os"

	"github.com/avetins/sessionkeeper/internal/buildinfo"
	"github.com/avetins/sessionkeeper/internal/client/cli"
	"github.com/avetins/sessionkeeper/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
