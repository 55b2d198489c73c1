package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
)

type HitRepository struct {
	mu      sync.RWMutex
	byMatch map[int64][]buzzerbeater.Hit
}

func NewHitRepository() *HitRepository {
	return &HitRepository{byMatch: make(map[int64][]buzzerbeater.Hit)}
}

func (r *HitRepository) ReplaceByMatch(_ context.Context, matchID int64, hits []buzzerbeater.Hit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(hits) == 0 {
		delete(r.byMatch, matchID)
		return nil
	}

	rows := make([]buzzerbeater.Hit, len(hits))
	copy(rows, hits)
	for i := range rows {
		rows[i].MatchID = matchID
	}
	r.byMatch[matchID] = rows
	return nil
}

func (r *HitRepository) ListByMatch(_ context.Context, matchID int64) ([]buzzerbeater.Hit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byMatch[matchID]
	out := make([]buzzerbeater.Hit, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}
