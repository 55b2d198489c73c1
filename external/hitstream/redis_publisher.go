package hitstream

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultStream = "buzzerbeaters.detected"

// StreamClient is the subset of the redis client used for publishing.
type StreamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type RedisPublisherConfig struct {
	Stream  string
	MaxLen  int64
	Timeout time.Duration
	Circuit resilience.CircuitBreakerConfig
}

// RedisPublisher appends one stream entry per detected hit.
type RedisPublisher struct {
	client  StreamClient
	stream  string
	maxLen  int64
	timeout time.Duration
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewRedisPublisher(client StreamClient, cfg RedisPublisherConfig, logger *logging.Logger) *RedisPublisher {
	stream := strings.TrimSpace(cfg.Stream)
	if stream == "" {
		stream = defaultStream
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	var breaker *resilience.CircuitBreaker
	if cfg.Circuit.Enabled {
		breaker = resilience.NewCircuitBreakerFromConfig(cfg.Circuit)
	}

	return &RedisPublisher{
		client:  client,
		stream:  stream,
		maxLen:  cfg.MaxLen,
		timeout: timeout,
		breaker: breaker,
		logger:  logger,
	}
}

// entryValues is the flat field set of one stream entry; the full hit travels as JSON in "data".
func entryValues(runID string, hit buzzerbeater.Hit) (map[string]any, error) {
	data, err := sonic.Marshal(hit)
	if err != nil {
		return nil, crerr.Wrap(err, "marshal hit payload")
	}

	return map[string]any{
		"run_id":      runID,
		"match_id":    strconv.FormatInt(hit.MatchID, 10),
		"event_index": strconv.Itoa(hit.EventIndex),
		"period":      hit.Period,
		"team":        hit.Team,
		"linked_kind": string(hit.LinkedKind),
		"data":        string(data),
	}, nil
}

func (p *RedisPublisher) PublishHits(ctx context.Context, runID string, analysis buzzerbeater.Analysis) error {
	if p == nil || p.client == nil {
		return crerr.New("hit stream publisher is not configured")
	}
	if len(analysis.Hits) == 0 {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("hitstream.stream", p.stream),
			attribute.String("hitstream.run_id", runID),
			attribute.Int64("hitstream.match_id", analysis.MatchID),
			attribute.Int("hitstream.hit_count", len(analysis.Hits)),
		)
	}

	published := 0
	for _, hit := range analysis.Hits {
		values, err := entryValues(runID, hit)
		if err != nil {
			return err
		}

		var entryID string
		err = p.breaker.Execute(ctx, func(ctx context.Context) error {
			callCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			args := &redis.XAddArgs{
				Stream: p.stream,
				Values: values,
			}
			if p.maxLen > 0 {
				args.MaxLen = p.maxLen
				args.Approx = true
			}

			id, err := p.client.XAdd(callCtx, args).Result()
			if err != nil {
				return err
			}
			entryID = id
			return nil
		})
		if err != nil {
			return crerr.Wrapf(err, "xadd %s match=%d event=%d", p.stream, hit.MatchID, hit.EventIndex)
		}

		published++
		p.logger.DebugContext(ctx, "hit published",
			"stream", p.stream,
			"entry_id", entryID,
			"match_id", hit.MatchID,
			"event_index", hit.EventIndex,
		)
	}

	p.logger.InfoContext(ctx, "hits published",
		"stream", p.stream,
		"run_id", runID,
		"match_id", analysis.MatchID,
		"count", published,
	)

	return nil
}
