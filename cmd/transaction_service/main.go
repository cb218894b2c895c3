package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bank_transaction_service/internal/adapters/database/mongodb"
	"github.com/SscSPs/bank_transaction_service/internal/adapters/database/pgsql"
	"github.com/SscSPs/bank_transaction_service/internal/adapters/downstream"
	portsrepo "github.com/SscSPs/bank_transaction_service/internal/core/ports/repositories"
	"github.com/SscSPs/bank_transaction_service/internal/core/services"
	"github.com/SscSPs/bank_transaction_service/internal/handlers"
	"github.com/SscSPs/bank_transaction_service/internal/middleware"
	"github.com/SscSPs/bank_transaction_service/internal/platform/config"
	"github.com/SscSPs/bank_transaction_service/internal/validation"
	"github.com/SscSPs/bank_transaction_service/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Bank Transaction Service API
// @version 1.0
// @description Opens bank accounts and credits for customers and joins them with their movements.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize transaction store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer := services.NewServiceContainer(cfg, repos, downstream.NewProviderSet(cfg))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validation.Register(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = redisClient.Close() }()
	}
	limiterInstance, err := middleware.NewLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiterInstance))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// openStore connects the configured transaction store and returns its repositories
// together with a function that releases the connection.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		closeFn := func() { database.CloseMongoClient(context.Background(), client) }
		return mongodb.NewRepositoryProvider(client.Database(cfg.MongoDatabase)), closeFn, nil

	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				dbPool.Close()
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}
