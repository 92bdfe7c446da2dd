package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"

	cartapp "github.com/shopcraft/storefront/internal/cart/app"
	cartdyn "github.com/shopcraft/storefront/internal/cart/infra/dynamo"
	"github.com/shopcraft/storefront/internal/cart/infra/redisstore"

	catalogapp "github.com/shopcraft/storefront/internal/catalog/app"
	catalogdyn "github.com/shopcraft/storefront/internal/catalog/infra/dynamo"

	orderapp "github.com/shopcraft/storefront/internal/order/app"
	"github.com/shopcraft/storefront/internal/order/events"
	orderdyn "github.com/shopcraft/storefront/internal/order/infra/dynamo"

	userapp "github.com/shopcraft/storefront/internal/user/app"
	userdyn "github.com/shopcraft/storefront/internal/user/infra/dynamo"

	"github.com/shopcraft/storefront/internal/httpapi"
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

	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db, err := dynamo.New(ctx, dynamo.Config{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
	if err != nil {
		log.Error("dynamodb client failed", slog.Any("err", err))
		os.Exit(1)
	}

	cartStore, err := redisstore.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connect failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer cartStore.Close()

	// Catalog
	productRepo := catalogdyn.NewProductRepo(db, cfg.ProductTableName)
	catalogSvc := catalogapp.NewService(productRepo)

	// Cart
	cartSvc := cartapp.NewService(cartStore)
	cartMirror := cartdyn.NewCartRepo(db, cfg.CartTableName)

	// Orders
	orderRepo := orderdyn.NewOrderRepo(db, cfg.OrderTableName)
	var publisher orderapp.EventPublisher
	if cfg.EventsEnabled {
		producer := events.NewProducer(cfg.KafkaBrokers, cfg.OrderTopic, log)
		defer producer.Close()
		publisher = producer
	}
	orderSvc := orderapp.NewService(orderRepo, cartSvc, cartMirror, publisher, log)

	// Users
	profileRepo := userdyn.NewProfileRepo(db, cfg.UserTableName)
	userSvc := userapp.NewService(profileRepo)

	router := httpapi.NewRouter(httpapi.Handlers{
		Catalog: httpapi.NewCatalogHandler(catalogSvc),
		Cart:    httpapi.NewCartHandler(cartSvc, cartMirror),
		Orders:  httpapi.NewOrderHandler(orderSvc),
		Users:   httpapi.NewUserHandler(userSvc),
	}, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	if cfg.EventsEnabled {
		consumer := events.NewCompensationConsumer(cfg.KafkaBrokers, cfg.PaymentTopic, orderSvc, log)
		defer consumer.Close()

		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info("compensation consumer starting", slog.String("topic", cfg.PaymentTopic))
			if err := consumer.Run(ctx); err != nil {
				log.Error("compensation consumer error", slog.Any("err", err))
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := server.Shutdown(stopCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
