package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/cache"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
)

// AnalysisCache holds finished analyses keyed by analysisCacheKey.
type AnalysisCache = cache.Store[buzzerbeater.Analysis]

func analysisCacheKey(matchID int64) string {
	return "analysis:" + strconv.FormatInt(matchID, 10)
}

type ReportService struct {
	reports  playbyplay.ReportRepository
	analyses *AnalysisCache
	validate *validator.Validate
	logger   *logging.Logger
}

// NewReportService builds the report import service. analyses may be nil when caching is disabled.
func NewReportService(reports playbyplay.ReportRepository, analyses *AnalysisCache, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{
		reports:  reports,
		analyses: analyses,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Import validates and stores a report, replacing any previous report for the same match.
func (s *ReportService) Import(ctx context.Context, report playbyplay.Report) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Import")
	defer span.End()

	if err := s.validate.StructCtx(ctx, report); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describeValidation(err))
	}

	if err := s.reports.Upsert(ctx, report); err != nil {
		return fmt.Errorf("upsert report match=%d: %w", report.MatchID, err)
	}
	if s.analyses != nil {
		s.analyses.Delete(ctx, analysisCacheKey(report.MatchID))
	}

	s.logger.InfoContext(ctx, "match report imported",
		"match_id", report.MatchID,
		"events", len(report.Events),
		"home_team", report.HomeTeam.Name,
		"away_team", report.AwayTeam.Name,
	)
	return nil
}

func (s *ReportService) Get(ctx context.Context, matchID int64) (playbyplay.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Get")
	defer span.End()

	if matchID <= 0 {
		return playbyplay.Report{}, fmt.Errorf("%w: match id must be > 0", ErrInvalidInput)
	}

	report, exists, err := s.reports.GetByMatchID(ctx, matchID)
	if err != nil {
		return playbyplay.Report{}, fmt.Errorf("get report match=%d: %w", matchID, err)
	}
	if !exists {
		return playbyplay.Report{}, fmt.Errorf("%w: report for match=%d", ErrNotFound, matchID)
	}
	return report, nil
}
