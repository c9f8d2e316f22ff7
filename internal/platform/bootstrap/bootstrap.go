// Package bootstrap builds the infrastructure both binaries share from configuration:
// the record store, the per-employee lock and the ledger event publisher.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/pto_ledger_service/internal/adapters/events/kafka"
	"github.com/SscSPs/pto_ledger_service/internal/adapters/events/logevents"
	"github.com/SscSPs/pto_ledger_service/internal/adapters/recordstore/airtable"
	"github.com/SscSPs/pto_ledger_service/internal/adapters/recordstore/memory"
	"github.com/SscSPs/pto_ledger_service/internal/adapters/recordstore/pgsql"
	"github.com/SscSPs/pto_ledger_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/pto_ledger_service/internal/platform/config"
	"github.com/SscSPs/pto_ledger_service/internal/platform/locking"
	"github.com/SscSPs/pto_ledger_service/pkg/database"
	"github.com/redis/go-redis/v9"
)

// Cleanup releases whatever a constructor opened. It is never nil.
type Cleanup func()

func noop() {}

// NewLogger returns a JSON slog logger writing to w at the configured level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// OpenRecordStore connects the backend named by cfg.RecordStore. For pgsql the schema
// migrations are applied before the store is returned.
func OpenRecordStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RecordStore, Cleanup, error) {
	switch cfg.RecordStore {
	case config.StoreAirtable:
		client, err := airtable.New(airtable.Config{
			APIURL:      cfg.AirtableAPIURL,
			Token:       cfg.AirtableAPIToken,
			BaseID:      cfg.AirtableBaseID,
			Timeout:     cfg.StoreTimeout,
			MaxFailures: cfg.BreakerMaxFailures,
			OpenTimeout: cfg.BreakerOpenTimeout,
		}, airtable.WithLogger(logger))
		if err != nil {
			return nil, noop, err
		}
		logger.Info("Using Airtable record store", slog.String("base_id", cfg.AirtableBaseID))
		return client, noop, nil

	case config.StorePgsql:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			database.ClosePgxPool(pool, logger)
			return nil, noop, err
		}
		logger.Info("Using PostgreSQL record store")
		return pgsql.NewStore(pool), func() { database.ClosePgxPool(pool, logger) }, nil

	case config.StoreMemory:
		logger.Warn("Using in-memory record store; data is lost on exit")
		return memory.New(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown record store %q", cfg.RecordStore)
	}
}

// NewLocker returns a Redis-backed lock when REDIS_URL is set and a process-local one otherwise.
func NewLocker(ctx context.Context, cfg *config.Config, logger *slog.Logger) (locking.Locker, Cleanup, error) {
	if cfg.RedisURL == "" {
		logger.Info("Using process-local balance lock")
		return locking.NewLocalLocker(), noop, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, noop, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, noop, fmt.Errorf("failed to reach redis: %w", err)
	}

	logger.Info("Using Redis balance lock", slog.String("addr", opts.Addr), slog.Duration("ttl", cfg.LockTTL))
	locker := locking.NewRedisLocker(client, locking.WithTTL(cfg.LockTTL), locking.WithLockLogger(logger))
	return locker, func() {
		if err := client.Close(); err != nil {
			logger.Error("Failed to close redis client", slog.String("error", err.Error()))
		}
	}, nil
}

// NewPublisher returns a Kafka publisher when brokers are configured and a log publisher otherwise.
func NewPublisher(cfg *config.Config, logger *slog.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return logevents.NewPublisher(logger)
	}
	logger.Info("Publishing ledger events to Kafka",
		slog.String("topic", cfg.KafkaTopic),
		slog.Any("brokers", cfg.KafkaBrokers))
	return kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}
