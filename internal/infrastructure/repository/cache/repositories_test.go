package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	buzzerbeatermock "github.com/riskibarqy/buzzerbeater-analyzer/internal/mocks/domain/buzzerbeater"
	playbyplaymock "github.com/riskibarqy/buzzerbeater-analyzer/internal/mocks/domain/playbyplay"
	"github.com/stretchr/testify/mock"
)

func TestReportRepository_CachesAndInvalidatesOnUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playbyplaymock.NewReportRepository(t)
	report := playbyplay.Report{MatchID: 8, HomeTeam: playbyplay.Team{Name: "Harbor Cats"}}

	next.On("GetByMatchID", mock.Anything, int64(8)).Return(report, true, nil).Twice()
	next.On("Upsert", mock.Anything, report).Return(nil).Once()

	repo := NewReportRepository(next, time.Minute)
	for i := 0; i < 3; i++ {
		got, exists, err := repo.GetByMatchID(ctx, 8)
		if err != nil || !exists || got.MatchID != 8 {
			t.Fatalf("get %d: exists=%v err=%v report=%+v", i, exists, err, got)
		}
	}

	if err := repo.Upsert(ctx, report); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, _, err := repo.GetByMatchID(ctx, 8); err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
}

func TestReportRepository_CachesMisses(t *testing.T) {
	t.Parallel()

	next := playbyplaymock.NewReportRepository(t)
	next.On("GetByMatchID", mock.Anything, int64(404)).Return(playbyplay.Report{}, false, nil).Once()

	repo := NewReportRepository(next, time.Minute)
	for i := 0; i < 2; i++ {
		if _, exists, err := repo.GetByMatchID(context.Background(), 404); err != nil || exists {
			t.Fatalf("expected cached miss, exists=%v err=%v", exists, err)
		}
	}
}

func TestHitRepository_InvalidatesOnReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := buzzerbeatermock.NewRepository(t)
	first := []buzzerbeater.Hit{{EventIndex: 1}}
	second := []buzzerbeater.Hit{{EventIndex: 2}}

	next.On("ListByMatch", mock.Anything, int64(3)).Return(first, nil).Once()
	next.On("ReplaceByMatch", mock.Anything, int64(3), second).Return(nil).Once()
	next.On("ListByMatch", mock.Anything, int64(3)).Return(second, nil).Once()

	repo := NewHitRepository(next, time.Minute)
	for i := 0; i < 2; i++ {
		got, err := repo.ListByMatch(ctx, 3)
		if err != nil || len(got) != 1 || got[0].EventIndex != 1 {
			t.Fatalf("list %d: got=%+v err=%v", i, got, err)
		}
	}

	if err := repo.ReplaceByMatch(ctx, 3, second); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, err := repo.ListByMatch(ctx, 3)
	if err != nil || len(got) != 1 || got[0].EventIndex != 2 {
		t.Fatalf("expected fresh hits after replace, got=%+v err=%v", got, err)
	}
}
