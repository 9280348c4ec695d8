package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/gilby125/award-distance/api"
	"github.com/gilby125/award-distance/config"
	"github.com/gilby125/award-distance/pkg/buildinfo"
	"github.com/gilby125/award-distance/pkg/cache"
	"github.com/gilby125/award-distance/pkg/calculator"
	"github.com/gilby125/award-distance/pkg/health"
	"github.com/gilby125/award-distance/pkg/logger"
	"github.com/gilby125/award-distance/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err, "Failed to load configuration")
	}

	logger.Init(logger.Config{
		Level:  cfg.LoggingConfig.Level,
		Format: cfg.LoggingConfig.Format,
	})
	logger.Info("Starting award distance server", "version", buildinfo.String(), "environment", cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector, err = metrics.New(nil)
		if err != nil {
			logger.Fatal(err, "Failed to register metrics")
		}
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*cfg.DataConfig.SourceTimeout+time.Second)
	calc, err := calculator.Load(loadCtx, cfg.DataConfig, collector)
	cancelLoad()
	if err != nil {
		logger.Fatal(err, "Failed to load datasets")
	}

	hc := health.NewHealthChecker(buildinfo.Version)
	hc.AddReadinessChecker(&health.DatasetChecker{Name: "airports", Source: cfg.DataConfig.AirportsFile, Rows: calc.Airports.Len})
	hc.AddReadinessChecker(&health.DatasetChecker{Name: "fares", Source: cfg.DataConfig.FareChartFile, Rows: calc.Fares.Len})

	deps := api.Deps{
		Airports: calc.Airports,
		Regions:  calc.Regions,
		Resolver: calc.Index,
		Fares:    calc.Fares,
		Planner:  calc.Planner,
		Health:   hc,
		Metrics:  collector,
	}

	if cfg.CacheConfig.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConfig.Addr(),
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})
		defer rdb.Close()

		hc.AddChecker(&health.RedisChecker{Client: rdb, Name: "redis"})

		cm := cache.NewCacheManager(cache.NewRedisCache(rdb, cfg.CacheConfig.Prefix))
		// Responses cached by an earlier run may predate the loaded chart.
		clearCtx, cancelClear := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cm.Clear(clearCtx); err != nil {
			logger.Warn("Could not clear response cache, continuing without it", "error", err.Error(), "addr", cfg.RedisConfig.Addr())
		} else {
			deps.Cache = cm
			deps.CacheTTL = cfg.CacheConfig.TTL
		}
		cancelClear()
	}

	router := gin.New()
	api.RegisterRoutes(router, deps)

	// Start HTTP server
	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err, "Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal(err, "Server forced to shutdown")
	}

	logger.Info("Server exited properly")
}
