package database

import (
	"context"
	"net/url"
	"time"

	"go-jobseeker-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresConnection opens a pgx pool against the given connection string.
// Supabase projects should use the transaction-mode pooler (port 6543); the
// simple query protocol below is required in that mode to avoid
// "prepared statement already exists" errors.
func NewPostgresConnection(connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	if port := connPort(connString); port == "5432" {
		logger.Log.Warn("DATABASE_URL uses the direct connection (port 5432); on Supabase the pooled connection (port 6543) is recommended. See scripts/fix_connection.sh")
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	logger.Log.Info("Database connection established")
	return pool, nil
}

func connPort(connString string) string {
	u, err := url.Parse(connString)
	if err != nil {
		return ""
	}
	return u.Port()
}
