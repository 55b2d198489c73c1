package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	basecache "github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/cache"
)

type cachedReport struct {
	value  playbyplay.Report
	exists bool
}

// ReportRepository is a read-through cache in front of a report store. Writes invalidate.
type ReportRepository struct {
	next  playbyplay.ReportRepository
	cache *basecache.Store[cachedReport]
}

func NewReportRepository(next playbyplay.ReportRepository, ttl time.Duration) *ReportRepository {
	return &ReportRepository{next: next, cache: basecache.NewStore[cachedReport](ttl)}
}

func reportKey(matchID int64) string {
	return "report:id:" + strconv.FormatInt(matchID, 10)
}

func (r *ReportRepository) GetByMatchID(ctx context.Context, matchID int64) (playbyplay.Report, bool, error) {
	cached, err := r.cache.GetOrLoad(ctx, reportKey(matchID), func(ctx context.Context) (cachedReport, error) {
		item, exists, err := r.next.GetByMatchID(ctx, matchID)
		if err != nil {
			return cachedReport{}, err
		}
		return cachedReport{value: item, exists: exists}, nil
	})
	if err != nil {
		return playbyplay.Report{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *ReportRepository) Upsert(ctx context.Context, report playbyplay.Report) error {
	if err := r.next.Upsert(ctx, report); err != nil {
		return err
	}
	r.cache.Delete(ctx, reportKey(report.MatchID))
	return nil
}

// HitRepository caches stored hits per match.
type HitRepository struct {
	next  buzzerbeater.Repository
	cache *basecache.Store[[]buzzerbeater.Hit]
}

func NewHitRepository(next buzzerbeater.Repository, ttl time.Duration) *HitRepository {
	return &HitRepository{next: next, cache: basecache.NewStore[[]buzzerbeater.Hit](ttl)}
}

func hitsKey(matchID int64) string {
	return "hits:match:" + strconv.FormatInt(matchID, 10)
}

func (r *HitRepository) ReplaceByMatch(ctx context.Context, matchID int64, hits []buzzerbeater.Hit) error {
	if err := r.next.ReplaceByMatch(ctx, matchID, hits); err != nil {
		return err
	}
	r.cache.Delete(ctx, hitsKey(matchID))
	return nil
}

func (r *HitRepository) ListByMatch(ctx context.Context, matchID int64) ([]buzzerbeater.Hit, error) {
	items, err := r.cache.GetOrLoad(ctx, hitsKey(matchID), func(ctx context.Context) ([]buzzerbeater.Hit, error) {
		items, err := r.next.ListByMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return append([]buzzerbeater.Hit(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]buzzerbeater.Hit(nil), items...), nil
}
