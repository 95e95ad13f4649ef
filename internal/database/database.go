package database

import (
	"context"
	"fmt"
	"time"

	"flag-quiz/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver, registered as "oracle"
	"go.uber.org/zap"
)

const (
	DriverOracle   = "oracle"
	DriverPostgres = "pgx"
)

const pingTimeout = 5 * time.Second

func init() {
	// go-ora uses :name placeholders; sqlx does not know the driver name.
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
}

// NormalizeDriver maps configuration aliases onto registered driver names.
func NormalizeDriver(driver string) string {
	switch driver {
	case "postgres", "postgresql", DriverPostgres:
		return DriverPostgres
	default:
		return DriverOracle
	}
}

// NewSQLXDB opens and pings a database through sqlx.
func NewSQLXDB(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	driver = NormalizeDriver(driver)
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	logger.Get().Info("Connected to database", zap.String("driver", driver))
	return db, nil
}
