package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/infygo/config"
	"github.com/Domenick1991/infygo/internal/bootstrap"
	"github.com/Domenick1991/infygo/internal/logger"
	"github.com/Domenick1991/infygo/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
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

	zlog := logger.NewZeroLog(cfg.App.Env, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	inventory := bootstrap.NewInventory(ctx, cfg, zlog, metrics)
	defer inventory.Close()

	if err := bootstrap.Run(ctx, cfg, bootstrap.Deps{
		Flights:  inventory.Service,
		IDs:      inventory.IDs,
		Metrics:  metrics,
		Gatherer: reg,
		Log:      zlog,
	}); err != nil {
		zlog.Error("server error", logger.F("error", err))
		os.Exit(1)
	}
}
