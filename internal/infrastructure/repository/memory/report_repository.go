package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

type ReportRepository struct {
	mu      sync.RWMutex
	reports map[int64]playbyplay.Report
}

func NewReportRepository(seed ...playbyplay.Report) *ReportRepository {
	reports := make(map[int64]playbyplay.Report, len(seed))
	for _, item := range seed {
		reports[item.MatchID] = cloneReport(item)
	}
	return &ReportRepository{reports: reports}
}

func (r *ReportRepository) GetByMatchID(_ context.Context, matchID int64) (playbyplay.Report, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.reports[matchID]
	if !ok {
		return playbyplay.Report{}, false, nil
	}
	return cloneReport(item), true, nil
}

func (r *ReportRepository) Upsert(_ context.Context, report playbyplay.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports[report.MatchID] = cloneReport(report)
	return nil
}

func cloneReport(report playbyplay.Report) playbyplay.Report {
	events := make([]playbyplay.RawEvent, len(report.Events))
	for i, ev := range report.Events {
		ev.Players = append([]string(nil), ev.Players...)
		events[i] = ev
	}
	report.Events = events
	return report
}
