package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	catalogapp "github.com/shopcraft/storefront/internal/catalog/app"
	catalogdyn "github.com/shopcraft/storefront/internal/catalog/infra/dynamo"
	"github.com/shopcraft/storefront/internal/seed"
	"github.com/shopcraft/storefront/pkg/config"
	"github.com/shopcraft/storefront/pkg/dynamo"
	"github.com/shopcraft/storefront/pkg/logger"
	"github.com/shopcraft/storefront/pkg/shutdown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Service: "seed", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db, err := dynamo.New(ctx, dynamo.Config{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
	if err != nil {
		log.Error("dynamodb client failed", slog.Any("err", err))
		os.Exit(1)
	}

	svc := catalogapp.NewService(catalogdyn.NewProductRepo(db, cfg.ProductTableName))
	results := seed.Run(ctx, svc, seed.SampleProducts(), cfg.SeedConcurrency, log)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	log.Info("seed finished", slog.Int("total", len(results)), slog.Int("failed", failed))
	if failed > 0 {
		os.Exit(1)
	}
}
