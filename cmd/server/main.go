package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/tomekh/stockledger/internal/adapter/http"
	"github.com/tomekh/stockledger/internal/adapter/http/handler"
	"github.com/tomekh/stockledger/internal/adapter/http/middleware"
	postgresRepo "github.com/tomekh/stockledger/internal/adapter/repository/postgres"
	redisRepo "github.com/tomekh/stockledger/internal/adapter/repository/redis"
	"github.com/tomekh/stockledger/internal/infrastructure/auth"
	"github.com/tomekh/stockledger/internal/infrastructure/config"
	"github.com/tomekh/stockledger/internal/infrastructure/logger"
	"github.com/tomekh/stockledger/internal/infrastructure/metrics"
	"github.com/tomekh/stockledger/internal/infrastructure/postgres"
	"github.com/tomekh/stockledger/internal/infrastructure/redis"
	"github.com/tomekh/stockledger/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations before opening the pool
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	productRepo := postgresRepo.NewProductRepository(pool)
	purchaseRepo := postgresRepo.NewPurchaseRepository(pool)
	saleRepo := postgresRepo.NewSaleRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient, m.StockCacheHits, m.StockCacheMisses)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	productUC := usecase.NewProductUseCase(productRepo, purchaseRepo, saleRepo, idGen)
	purchaseUC := usecase.NewPurchaseUseCase(productRepo, purchaseRepo, idGen, cache)
	saleUC := usecase.NewSaleUseCase(txManager, retrier, productRepo, purchaseRepo, saleRepo, idGen, cache)
	stockUC := usecase.NewStockUseCase(productRepo, purchaseRepo, saleRepo, cache)
	inventoryUC := usecase.NewInventoryUseCase(productRepo, purchaseRepo, saleRepo)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Authentication
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled {
		if cfg.JWTSecret == "" {
			log.Fatal().Msg("AUTH_ENABLED requires JWT_SECRET to be set")
		}
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	}

	cookies := handler.CookieConfig{
		Secure: cfg.CookieSecure,
		Domain: cfg.CookieDomain,
	}

	// Initialize handlers
	productHandler := handler.NewProductHandler(productUC, m)
	purchaseHandler := handler.NewPurchaseHandler(purchaseUC, m)
	saleHandler := handler.NewSaleHandler(saleUC, m)
	inventoryHandler := handler.NewInventoryHandler(inventoryUC, stockUC)
	authHandler := handler.NewAuthHandler(userUC, jwtManager, cookies, m)
	userHandler := handler.NewUserHandler(userUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	loginLimiter := middleware.NewRateLimiter(float64(cfg.LoginRatePerMin)/60.0, cfg.LoginRateBurst, m.RateLimitHits)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ProductHandler:   productHandler,
		PurchaseHandler:  purchaseHandler,
		SaleHandler:      saleHandler,
		InventoryHandler: inventoryHandler,
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		JWTManager:       jwtManager,
		AuthEnabled:      cfg.AuthEnabled,
		LoginRateLimiter: loginLimiter,
		Logger:           log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Bool("auth", cfg.AuthEnabled).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
