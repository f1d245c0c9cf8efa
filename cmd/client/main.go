package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/atsscan/internal/buildinfo"
	"github.com/dmitrijs2005/atsscan/internal/client/cli"
	"github.com/dmitrijs2005/atsscan/internal/client/config"
	"github.com/dmitrijs2005/atsscan/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(ctx, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel, os.Stderr)
	logger.Debug(ctx, "starting", "version", buildinfo.Version(), "server", cfg.ServerBaseURL)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
