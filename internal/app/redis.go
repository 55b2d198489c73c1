package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/buzzerbeater-analyzer/external/hitstream"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/config"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
)

// newRedisClient returns nil when the hit stream is disabled.
func newRedisClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*redis.Client, error) {
	if !cfg.RedisEnabled {
		logger.Info("hit stream disabled", "reason", "REDIS_ENABLED=false")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.RedisTimeout,
		ReadTimeout:  cfg.RedisTimeout,
		WriteTimeout: cfg.RedisTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.RedisTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("hit stream enabled",
		"addr", cfg.RedisAddr,
		"db", cfg.RedisDB,
		"stream", cfg.RedisStream,
		"circuit_enabled", cfg.RedisCircuit.Enabled,
	)
	return client, nil
}

func newHitPublisher(client *redis.Client, cfg config.Config, logger *logging.Logger) *hitstream.RedisPublisher {
	return hitstream.NewRedisPublisher(client, hitstream.RedisPublisherConfig{
		Stream:  cfg.RedisStream,
		MaxLen:  cfg.RedisStreamMaxLen,
		Timeout: cfg.RedisTimeout,
		Circuit: cfg.RedisCircuit,
	}, logger.Named("hitstream"))
}
