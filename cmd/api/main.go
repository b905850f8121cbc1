package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/simplytrees/bacqyard-bridge/api/routes"
	"github.com/simplytrees/bacqyard-bridge/internal/catalog"
	"github.com/simplytrees/bacqyard-bridge/internal/intake"
	"github.com/simplytrees/bacqyard-bridge/internal/orders"
	"github.com/simplytrees/bacqyard-bridge/pkg/config"
	"github.com/simplytrees/bacqyard-bridge/pkg/db"
	"github.com/simplytrees/bacqyard-bridge/pkg/logger"
	"github.com/simplytrees/bacqyard-bridge/pkg/metrics"
	"github.com/simplytrees/bacqyard-bridge/pkg/migrate"
	"github.com/simplytrees/bacqyard-bridge/pkg/shopify"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	shopifyClient, err := shopify.NewClient(context.Background(), cfg.Shopify, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create shopify client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	bridgeMetrics := metrics.NewBridgeMetrics(registry)

	catalogService, err := catalog.NewService(
		shopifyClient,
		catalog.NewProjector(shopifyClient.StoreDomain()),
		bridgeMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	var forwarder orders.Forwarder = orders.DiscardForwarder{}
	if cfg.Partner.ForwardEnabled {
		forwarder, err = orders.NewHTTPForwarder(cfg.Partner)
		if err != nil {
			logg.Error(context.Background(), "failed to create partner forwarder", err)
			os.Exit(1)
		}
	}

	orderRouter, err := orders.NewRouter(orders.NewRepository(dbClient.DB()), forwarder)
	if err != nil {
		logg.Error(context.Background(), "failed to create order router", err)
		os.Exit(1)
	}

	intakeService, err := intake.NewService(
		cfg.Webhook.Secret,
		cfg.Webhook.AcceptedRefs,
		orderRouter,
		logg,
		bridgeMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create intake service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting bridge api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, catalogService, intakeService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
