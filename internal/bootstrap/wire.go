package bootstrap

import (
	"context"
	"time"

	"github.com/Domenick1991/infygo/config"
	"github.com/Domenick1991/infygo/internal/audit"
	"github.com/Domenick1991/infygo/internal/cache"
	"github.com/Domenick1991/infygo/internal/idgen"
	"github.com/Domenick1991/infygo/internal/kafka"
	"github.com/Domenick1991/infygo/internal/logger"
	"github.com/Domenick1991/infygo/internal/observability"
	"github.com/Domenick1991/infygo/internal/repository"
	"github.com/Domenick1991/infygo/internal/seed"
	"github.com/Domenick1991/infygo/internal/service/flights"
)

// Inventory is the assembled core plus whatever it needs closed on exit.
type Inventory struct {
	Service *flights.FlightService
	IDs     *idgen.Sequence
	closers []func() error
}

func (i *Inventory) Close() {
	for j := len(i.closers) - 1; j >= 0; j-- {
		_ = i.closers[j]()
	}
}

// NewInventory builds the store, service and observers described by cfg.
// Redis and Kafka are optional; when they are unreachable the service runs
// without them.
func NewInventory(ctx context.Context, cfg *config.Config, log logger.Client, metrics *observability.Metrics) *Inventory {
	inv := &Inventory{IDs: idgen.NewSequence(cfg.Inventory.IDPrefix, cfg.Inventory.IDStart)}

	observers := flights.Observers{flights.NewLoggingObserver(log)}
	if metrics != nil {
		observers = append(observers, observability.NewMetricsObserver(metrics))
	}

	opts := []flights.FlightServiceOption{}
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Warn("redis unavailable, running without cache", logger.F("addr", cfg.Redis.Addr), logger.F("error", err))
			_ = redisCache.Close()
		} else {
			opts = append(opts, flights.WithCache(redisCache, cfg.Inventory.CacheTTL()))
			inv.closers = append(inv.closers, redisCache.Close)
		}
	}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		dialCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := producer.CheckConnection(dialCtx)
		cancel()
		if err != nil {
			log.Warn("kafka unavailable, audit events disabled", logger.F("brokers", cfg.Kafka.Brokers), logger.F("error", err))
			_ = producer.Close()
		} else {
			observers = append(observers, audit.NewObserver(producer, cfg.Kafka.AuditTopic, log))
			inv.closers = append(inv.closers, producer.Close)
		}
	}

	opts = append(opts, flights.WithObserver(observers))
	inv.Service = flights.NewFlightService(repository.NewMemoryFlightRepository(), opts...)

	if cfg.Inventory.SeedSampleData {
		added := seed.Load(ctx, inv.Service, time.Now(), inv.IDs, log)
		log.Info("sample flights loaded", logger.F("count", added))
	}
	return inv
}
