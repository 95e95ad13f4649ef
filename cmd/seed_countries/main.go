package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flag-quiz/internal/adapter/catalog"
	"flag-quiz/internal/config"
	"flag-quiz/internal/database"
	"flag-quiz/internal/domain"
	"flag-quiz/internal/logger"
	"flag-quiz/internal/repository"

	"go.uber.org/zap"
)

// Replaces the countries table with the contents of catalog.path.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Info("Loading seed data from file", zap.String("path", cfg.Catalog.Path))
	countries, err := catalog.NewFileSource(cfg.Catalog.Path).Load(ctx)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.Error(err))
	}

	// same checks the server applies at startup
	validated, err := domain.NewCatalog(countries)
	if err != nil {
		log.Fatal("Seed data rejected", zap.Error(err))
	}

	db, err := database.NewSQLXDB(ctx, cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewCountryDatabaseAdapter(db)
	tm := repository.NewTransactionManagerAdapter(db)
	err = tm.WithTransaction(ctx, func(txCtx context.Context) error {
		return repo.ReplaceAll(txCtx, validated.Countries())
	})
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Countries seeded", zap.Int("count", validated.Len()))
}
