package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Domenick1991/infygo/api"
	"github.com/Domenick1991/infygo/config"
	"github.com/Domenick1991/infygo/internal/idgen"
	"github.com/Domenick1991/infygo/internal/logger"
	"github.com/Domenick1991/infygo/internal/observability"
	"github.com/Domenick1991/infygo/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Flights  flights.FlightUseCase
	IDs      idgen.Generator
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
	Log      logger.Client
}

// Run serves HTTP and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, deps),
	}

	errCh := make(chan error, 1)
	go func() {
		deps.Log.Info("http server listening", logger.F("address", cfg.HTTP.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		deps.Log.Info("http server stopped")
		return nil
	}
}

func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.GinMiddleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api.NewFlightHandler(deps.Flights, deps.IDs).Register(r.Group("/flights"))
	return r
}
