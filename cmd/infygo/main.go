package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/infygo/config"
	"github.com/Domenick1991/infygo/internal/bootstrap"
	"github.com/Domenick1991/infygo/internal/console"
	"github.com/Domenick1991/infygo/internal/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// The menu owns stdout, so structured logs go to stderr.
	zlog := logger.NewWithWriter(cfg.App.Env, cfg.App.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inventory := bootstrap.NewInventory(ctx, cfg, zlog, nil)
	defer inventory.Close()

	menu := console.New(inventory.Service, inventory.IDs, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil && ctx.Err() == nil {
		zlog.Error("console stopped", logger.F("error", err))
	}
}
