package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/config"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Storage bundles the repositories selected by STORAGE_DRIVER.
type Storage struct {
	Reports playbyplay.ReportRepository
	Hits    buzzerbeater.Repository
	db      *sqlx.DB
}

func OpenStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Storage, error) {
	var storage Storage
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		storage = Storage{
			Reports: postgres.NewReportRepository(db),
			Hits:    postgres.NewHitRepository(db),
			db:      db,
		}
	default:
		storage = Storage{
			Reports: memory.NewReportRepository(memory.SeedReports()...),
			Hits:    memory.NewHitRepository(),
		}
	}

	if cfg.CacheEnabled {
		storage.Reports = cache.NewReportRepository(storage.Reports, cfg.CacheTTL)
		storage.Hits = cache.NewHitRepository(storage.Hits, cfg.CacheTTL)
	}

	logger.Info("storage ready",
		"driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
	)
	return &storage, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.AnalysisMaxWorkers * 2)
	db.SetMaxIdleConns(cfg.AnalysisMaxWorkers)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
