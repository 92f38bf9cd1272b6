package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/pkg/config"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
	retrierconfig "github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/retrier"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/retrier/backoff_adapter"
)

const (
	maxConns        = 10
	minConns        = 5
	maxConnLifetime = time.Hour

	pingInitialInterval = 5 * time.Second
	pingMaxInterval     = 30 * time.Second
	pingMaxElapsedTime  = 2 * time.Minute
	pingRandomization   = 0.5
	pingMultiplier      = 2
)

// NewConnPool открывает пул соединений и дожидается доступности базы.
// На старте контейнеров база может подниматься дольше сервиса,
// поэтому первый пинг ретраится с бэкоффом.
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(newDsn(cfg))
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns
	poolCfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
	)

	if err := waitForDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

func newDsn(cfg *config.Database) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
}

func waitForDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: pingInitialInterval,
		MaxInterval:     pingMaxInterval,
		MaxElapsedTime:  pingMaxElapsedTime,
		Randomization:   pingRandomization,
		Multiplier:      pingMultiplier,
		ShouldRetry:     nil, // на старте любые ошибки временные
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("pinging database")

		return pool.Ping(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("database is unreachable, retries exhausted")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("database connection established")
	return nil
}
