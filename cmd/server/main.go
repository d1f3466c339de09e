package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/cache"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/config"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/consumer"
	apphttp "github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/http"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/repository"
	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}
	logger.Info().Str("uri", cfg.MongoURI).Msg("connected to MongoDB")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

	storeCache := cache.NewRedisCache(redisClient)
	products := repository.NewBreakerProductLookup(repository.NewMongoProductLookup(mongoDB))

	cartService := service.NewCartService(repository.NewMongoCartRepository(mongoDB), products, storeCache, logger)
	wishlistService := service.NewWishlistService(repository.NewMongoWishlistRepository(mongoDB), products, storeCache, logger)

	orderConsumer := consumer.NewOrderPlacedConsumer(cartService, logger, cfg.OrderTopic, cfg.ConsumerGroupID, cfg.KafkaBrokers...)
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	go orderConsumer.Run(consumerCtx)

	router := apphttp.NewRouter(
		apphttp.NewCartHandler(cartService, cfg.Pricing()),
		apphttp.NewWishlistHandler(wishlistService),
		logger,
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.ServerPort).Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down...")

	stopConsumer()
	if err := orderConsumer.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close order consumer")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	if err := mongoDB.Client().Disconnect(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to disconnect MongoDB")
	}

	logger.Info().Msg("storefront stopped")
}
