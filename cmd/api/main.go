// @title Flag Quiz API
// @version 1.0
// @description Geography flag quiz: filtered quiz sessions, typed or multiple-choice answers, and learn-mode flashcards.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"flag-quiz/internal/adapter"
	"flag-quiz/internal/adapter/catalog"
	"flag-quiz/internal/cache"
	"flag-quiz/internal/config"
	"flag-quiz/internal/database"
	"flag-quiz/internal/domain"
	"flag-quiz/internal/handler"
	"flag-quiz/internal/logger"
	"flag-quiz/internal/middleware"
	"flag-quiz/internal/repository"
	"flag-quiz/internal/service"

	_ "flag-quiz/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const startupTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Catalog load and cache connect are independent; either failing aborts startup.
	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	var (
		countries *domain.Catalog
		store     domain.Cache
	)
	g, gctx := errgroup.WithContext(startCtx)
	g.Go(func() error {
		var loadErr error
		countries, loadErr = loadCatalog(gctx, cfg)
		return loadErr
	})
	g.Go(func() error {
		var cacheErr error
		store, cacheErr = newSessionCache(gctx, cfg.Redis)
		return cacheErr
	})
	err = g.Wait()
	cancelStart()
	if err != nil {
		appLogger.Fatal("Startup failed", zap.Error(err))
	}

	// Initialize services
	rng := domain.NewLockedRand()
	catalogService := service.NewCatalogService(countries)
	quizService := service.NewQuizService(countries, service.NewSessionStore(store, cfg.Session.TTL), rng, service.QuizOptions{
		OptionCount:  cfg.Quiz.OptionCount,
		DefaultCount: cfg.Quiz.DefaultCount,
		MaxCount:     cfg.Quiz.MaxCount,
		FlagBaseURL:  cfg.Flags.BaseURL,
	})
	learnService := service.NewLearnService(countries, service.NewDeckStore(store, cfg.Session.TTL), rng, cfg.Flags.BaseURL)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    64 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Catalog:    handler.NewCatalogHandler(catalogService),
		Quiz:       handler.NewQuizHandler(quizService),
		Learn:      handler.NewLearnHandler(learnService),
		Health:     handler.NewHealthHandler(store, countries),
		Validation: middleware.NewValidationMiddleware(cfg.Quiz.MaxCount),
	})

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.Int("countries", countries.Len()),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// loadCatalog reads the country list from the configured source.
func loadCatalog(ctx context.Context, cfg *config.Config) (*domain.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		return service.LoadCatalog(ctx, catalog.NewFileSource(cfg.Catalog.Path))
	case config.CatalogSourceHTTP:
		return service.LoadCatalog(ctx, catalog.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.Timeout))
	case config.CatalogSourceDatabase:
		db, err := database.NewSQLXDB(ctx, cfg.DB.Driver, cfg.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to catalog database: %w", err)
		}
		// the catalog is immutable after startup, so the connection is not kept
		defer db.Close()
		return service.LoadCatalog(ctx, repository.NewCountryDatabaseAdapter(db))
	default:
		return nil, fmt.Errorf("unsupported catalog source %q", cfg.Catalog.Source)
	}
}

// newSessionCache connects to Redis when an address is configured and falls
// back to process memory otherwise.
func newSessionCache(ctx context.Context, redisCfg config.RedisConfig) (domain.Cache, error) {
	if redisCfg.Address == "" {
		logger.Get().Info("No redis.address configured, keeping sessions in memory")
		return adapter.NewMemoryCacheAdapter(), nil
	}
	client, err := cache.NewRedisClient(ctx, redisCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Get().Info("Successfully connected to Redis", zap.String("address", redisCfg.Address))
	return adapter.NewRedisCacheAdapter(client), nil
}
