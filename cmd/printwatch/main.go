package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"printwatch/internal/buildinfo"
	"printwatch/internal/cli"
	"printwatch/internal/config"
	"printwatch/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogFile, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
