package playbyplay

import "context"

// ReportRepository stores parsed match reports.
type ReportRepository interface {
	GetByMatchID(ctx context.Context, matchID int64) (Report, bool, error)
	Upsert(ctx context.Context, report Report) error
}
