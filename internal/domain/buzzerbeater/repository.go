package buzzerbeater

import "context"

// Repository persists detected hits per match.
type Repository interface {
	ReplaceByMatch(ctx context.Context, matchID int64, hits []Hit) error
	ListByMatch(ctx context.Context, matchID int64) ([]Hit, error)
}
