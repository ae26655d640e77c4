package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/infygo/config"
	"github.com/Domenick1991/infygo/internal/audit"
	"github.com/Domenick1991/infygo/internal/kafka"
	"github.com/Domenick1991/infygo/internal/logger"
	kafkaGo "github.com/segmentio/kafka-go"
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
	if !cfg.Kafka.Enabled() {
		log.Fatalf("worker needs kafka.brokers and kafka.audit_topic")
	}

	zlog := logger.NewZeroLog(cfg.App.Env, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AuditTopic)
	defer consumer.Close()

	sink := audit.NewLogSink(zlog)
	zlog.Info("audit worker started", logger.F("topic", cfg.Kafka.AuditTopic))

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := audit.Decode(msg.Value)
		if err != nil {
			zlog.Warn("skipping audit message", logger.F("offset", msg.Offset), logger.F("error", err))
			return nil
		}
		return sink.Handle(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		zlog.Error("consumer stopped", logger.F("error", err))
		os.Exit(1)
	}
	zlog.Info("audit worker stopped")
}
