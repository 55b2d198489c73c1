package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	idgen "github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/id"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// HitPublisher forwards the hits of one analysis run to downstream consumers.
type HitPublisher interface {
	PublishHits(ctx context.Context, runID string, analysis buzzerbeater.Analysis) error
}

type BuzzerbeaterServiceConfig struct {
	// MaxWorkers bounds FindByMatches when the request does not set its own limit.
	MaxWorkers int
}

type BuzzerbeaterService struct {
	reports     playbyplay.ReportRepository
	hits        buzzerbeater.Repository
	commentator playbyplay.Commentator
	publisher   HitPublisher
	analyses    *AnalysisCache
	ids         idgen.Generator
	cfg         BuzzerbeaterServiceConfig
	logger      *logging.Logger
}

type BuzzerbeaterServiceDeps struct {
	Reports     playbyplay.ReportRepository
	Hits        buzzerbeater.Repository
	Commentator playbyplay.Commentator
	// Publisher and Analyses are optional.
	Publisher HitPublisher
	Analyses  *AnalysisCache
	IDs       idgen.Generator
	Logger    *logging.Logger
}

func NewBuzzerbeaterService(deps BuzzerbeaterServiceDeps, cfg BuzzerbeaterServiceConfig) *BuzzerbeaterService {
	if deps.Commentator == nil {
		deps.Commentator = playbyplay.NewTemplateCommentator(nil)
	}
	if deps.IDs == nil {
		deps.IDs = idgen.NewUUIDGenerator()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = defaultBulkWorkers
	}

	return &BuzzerbeaterService{
		reports:     deps.Reports,
		hits:        deps.Hits,
		commentator: deps.Commentator,
		publisher:   deps.Publisher,
		analyses:    deps.Analyses,
		ids:         deps.IDs,
		cfg:         cfg,
		logger:      deps.Logger,
	}
}

// FindByMatch analyzes the stored report of one match, persists the hits and publishes them.
// Results are served from the analysis cache until the report is re-imported.
func (s *BuzzerbeaterService) FindByMatch(ctx context.Context, matchID int64) (buzzerbeater.Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BuzzerbeaterService.FindByMatch")
	defer span.End()
	span.SetAttributes(attribute.Int64("match.id", matchID))

	if matchID <= 0 {
		return buzzerbeater.Analysis{}, fmt.Errorf("%w: match id must be > 0", ErrInvalidInput)
	}
	if s.reports == nil {
		return buzzerbeater.Analysis{}, fmt.Errorf("%w: report storage is not configured", ErrDependencyUnavailable)
	}

	if s.analyses == nil {
		return s.analyzeStored(ctx, matchID)
	}
	return s.analyses.GetOrLoad(ctx, analysisCacheKey(matchID), func(ctx context.Context) (buzzerbeater.Analysis, error) {
		return s.analyzeStored(ctx, matchID)
	})
}

func (s *BuzzerbeaterService) analyzeStored(ctx context.Context, matchID int64) (buzzerbeater.Analysis, error) {
	report, exists, err := s.reports.GetByMatchID(ctx, matchID)
	if err != nil {
		return buzzerbeater.Analysis{}, fmt.Errorf("get report match=%d: %w", matchID, err)
	}
	if !exists {
		return buzzerbeater.Analysis{}, fmt.Errorf("%w: report for match=%d", ErrNotFound, matchID)
	}

	analysis := s.analyze(report)
	if s.hits != nil {
		if err := s.hits.ReplaceByMatch(ctx, matchID, analysis.Hits); err != nil {
			return buzzerbeater.Analysis{}, fmt.Errorf("store hits match=%d: %w", matchID, err)
		}
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return buzzerbeater.Analysis{}, fmt.Errorf("generate run id: %w", err)
	}
	s.logger.InfoContext(ctx, "buzzerbeater analysis finished",
		"run_id", runID,
		"match_id", matchID,
		"period_source", analysis.PeriodSource,
		"hit_count", len(analysis.Hits),
		"hits", summarizeHits(analysis.Hits),
	)

	if s.publisher != nil && len(analysis.Hits) > 0 {
		if err := s.publisher.PublishHits(ctx, runID, analysis); err != nil {
			s.logger.WarnContext(ctx, "publish buzzerbeater hits failed",
				"run_id", runID,
				"match_id", matchID,
				"error", err,
			)
		}
	}

	return analysis, nil
}

// AnalyzeReport runs the pipeline over an ad-hoc report without touching storage.
func (s *BuzzerbeaterService) AnalyzeReport(ctx context.Context, report playbyplay.Report) (buzzerbeater.Analysis, error) {
	_, span := startUsecaseSpan(ctx, "usecase.BuzzerbeaterService.AnalyzeReport")
	defer span.End()

	if report.MatchID < 0 {
		return buzzerbeater.Analysis{}, fmt.Errorf("%w: match id must be >= 0", ErrInvalidInput)
	}
	return s.analyze(report), nil
}

// ListStored returns the hits persisted by the last FindByMatch run for a match.
func (s *BuzzerbeaterService) ListStored(ctx context.Context, matchID int64) ([]buzzerbeater.Hit, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BuzzerbeaterService.ListStored")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be > 0", ErrInvalidInput)
	}
	if s.hits == nil {
		return nil, fmt.Errorf("%w: hit storage is not configured", ErrDependencyUnavailable)
	}

	items, err := s.hits.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list hits match=%d: %w", matchID, err)
	}
	return items, nil
}

func (s *BuzzerbeaterService) analyze(report playbyplay.Report) buzzerbeater.Analysis {
	annotated := report
	annotated.Events = playbyplay.Annotate(report.Events, report.Teams(), s.commentator)
	return buzzerbeater.Analyze(annotated)
}
