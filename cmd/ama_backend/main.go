package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/hanjoon-dev/account_manager_app/cmd/docs"
	portsrepo "github.com/hanjoon-dev/account_manager_app/internal/core/ports/repositories"
	"github.com/hanjoon-dev/account_manager_app/internal/core/services"
	"github.com/hanjoon-dev/account_manager_app/internal/handlers"
	"github.com/hanjoon-dev/account_manager_app/internal/middleware"
	"github.com/hanjoon-dev/account_manager_app/internal/repositories/cache"
	"github.com/hanjoon-dev/account_manager_app/internal/repositories/database/pgsql"
	"github.com/hanjoon-dev/account_manager_app/pkg/config"
	"github.com/hanjoon-dev/account_manager_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Account Manager API
// @version 1.0
// @description Banking back-office API: account lifecycle and balance transactions.

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

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	clientRepo := pgsql.NewClientRepository(dbPool)
	accountRepo := pgsql.NewAccountRepository(dbPool)
	transactionRepo := pgsql.NewTransactionRepository(dbPool)
	txManager := &pgsql.BaseRepository{Pool: dbPool}

	// Transaction lookup cache, enabled when REDIS_ADDR is configured
	var transactionCache portsrepo.TransactionCache = cache.NewNoopTransactionCache()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rdb.Close()
		transactionCache = cache.NewRedisTransactionCache(rdb)
		logger.Info("Transaction lookup cache enabled", slog.String("redis_addr", cfg.RedisAddr))
	}

	// Services
	accountService := services.NewAccountService(clientRepo, accountRepo, txManager)
	transactionService := services.NewTransactionService(clientRepo, accountRepo, transactionRepo, txManager, transactionCache)

	// Demo data provisioning, an explicit startup step outside core logic
	if cfg.SeedDemoData {
		seedService := services.NewSeedService(clientRepo, accountRepo)
		if err := seedService.SeedDemoData(context.Background(), logger); err != nil {
			logger.Error("Failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterValidations(); err != nil {
		logger.Error("Failed to register validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterHealthRoute(r)
	handlers.RegisterRoutes(r, accountService, transactionService)
	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations before the server
// starts serving requests.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	// Open a standard sql.DB connection for migrations using the pgx
	// stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
