// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Ushehu/My-Ride-App/internal/config"
	httptransport "github.com/Ushehu/My-Ride-App/internal/http"
	"github.com/Ushehu/My-Ride-App/internal/infra"
	"github.com/Ushehu/My-Ride-App/internal/modules/drivers"
	"github.com/Ushehu/My-Ride-App/internal/modules/estimate"
	"github.com/Ushehu/My-Ride-App/internal/modules/pricing"
	"github.com/Ushehu/My-Ride-App/internal/routing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	rate := pricing.DefaultRate
	if r, err := pricing.NewStore(dbPool).GetRate(ctx, rate.RideType); err == nil {
		rate = r
	} else {
		logger.Warn("no rate row configured, using defaults", zap.Error(err))
	}
	pricer := pricing.NewService(rate)

	var router routing.Router
	switch {
	case cfg.Routing.APIKey == "":
		logger.Warn("RIDE_ROUTING_API_KEY not set, fare estimation disabled")
	case cfg.Routing.Provider == "google":
		g, err := routing.NewGoogleRouter(cfg.Routing.APIKey)
		if err != nil {
			logger.Fatal("google routing init", zap.Error(err))
		}
		router = g
	default:
		router = routing.NewGeoapifyRouter(cfg.Routing.APIKey)
	}

	estimator := estimate.NewService(router, pricer, logger,
		estimate.WithMaxInFlight(cfg.Routing.MaxInFlight))
	driversSvc := drivers.NewService(drivers.NewStore(dbPool, redisClient), logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Estimate: estimator,
		Drivers:  driversSvc,
		Log:      logger,
		RadiusKm: cfg.Drivers.RadiusKm,
		Seed:     cfg.Drivers.Seed,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}
