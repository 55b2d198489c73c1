package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/config"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/interfaces/httpapi"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/cache"
	idgen "github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/id"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/usecase"
	"github.com/sourcegraph/conc/pool"
)

// Container holds the wired services and the resources they own.
type Container struct {
	ReportService       *usecase.ReportService
	BuzzerbeaterService *usecase.BuzzerbeaterService

	storage *Storage
	redis   *redis.Client
	logger  *logging.Logger
}

func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	redisClient, err := newRedisClient(ctx, cfg, logger)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}

	var analyses *usecase.AnalysisCache
	if cfg.CacheEnabled {
		analyses = cache.NewStore[buzzerbeater.Analysis](cfg.CacheTTL)
	}

	deps := usecase.BuzzerbeaterServiceDeps{
		Reports:  storage.Reports,
		Hits:     storage.Hits,
		Analyses: analyses,
		IDs:      idgen.NewUUIDGenerator(),
		Logger:   logger.Named("buzzerbeater"),
	}
	if redisClient != nil {
		deps.Publisher = newHitPublisher(redisClient, cfg, logger)
	}

	return &Container{
		ReportService:       usecase.NewReportService(storage.Reports, analyses, logger.Named("report")),
		BuzzerbeaterService: usecase.NewBuzzerbeaterService(deps, usecase.BuzzerbeaterServiceConfig{MaxWorkers: cfg.AnalysisMaxWorkers}),
		storage:             storage,
		redis:               redisClient,
		logger:              logger,
	}, nil
}

// Close releases storage and redis concurrently and joins their errors.
func (c *Container) Close(ctx context.Context) error {
	if c == nil {
		return nil
	}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(context.Context) error {
		if err := c.storage.Close(); err != nil {
			return fmt.Errorf("close storage: %w", err)
		}
		return nil
	})
	if c.redis != nil {
		p.Go(func(context.Context) error {
			if err := c.redis.Close(); err != nil {
				return fmt.Errorf("close redis: %w", err)
			}
			return nil
		})
	}

	err := p.Wait()
	if err == nil {
		c.logger.Info("resources released")
	}
	return err
}

func NewHTTPServer(cfg config.Config, container *Container, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if container == nil {
		return nil, fmt.Errorf("container is required")
	}

	handler := httpapi.NewHandler(container.ReportService, container.BuzzerbeaterService, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
