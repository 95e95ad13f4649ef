package main

import (
	"context"
	"log"
	"os"
	"time"

	"flag-quiz/internal/config"
	"flag-quiz/internal/database"
	"flag-quiz/internal/logger"

	"go.uber.org/zap"
)

const defaultMigrationsRoot = "database/migrations"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.NewSQLXDB(ctx, cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	root := os.Getenv("MIGRATIONS_DIR")
	if root == "" {
		root = defaultMigrationsRoot
	}
	dir := database.MigrationsDir(root, cfg.DB.Driver)

	l.Info("Running migrations", zap.String("dir", dir))
	if err := database.RunMigrations(ctx, db.DB, dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations completed")
}
