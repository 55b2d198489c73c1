package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

func TestReportRepository_UpsertAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewReportRepository()

	report := playbyplay.Report{
		MatchID:  9,
		HomeTeam: playbyplay.Team{Name: "Harbor Cats"},
		AwayTeam: playbyplay.Team{Name: "Valley Elk"},
		Events:   []playbyplay.RawEvent{{Team: playbyplay.SideHome, Players: []string{"Ana Ruiz"}}},
	}
	if err := repo.Upsert(ctx, report); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	report.Events[0].Players[0] = "mutated"

	got, exists, err := repo.GetByMatchID(ctx, 9)
	if err != nil || !exists {
		t.Fatalf("get: exists=%v err=%v", exists, err)
	}
	if got.Events[0].Players[0] != "Ana Ruiz" {
		t.Fatalf("stored report must not alias caller slices, got %q", got.Events[0].Players[0])
	}

	if _, exists, _ := repo.GetByMatchID(ctx, 10); exists {
		t.Fatalf("expected missing report")
	}
}

func TestHitRepository_ReplaceByMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewHitRepository()

	if err := repo.ReplaceByMatch(ctx, 4, []buzzerbeater.Hit{{EventIndex: 1}, {EventIndex: 8}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.ReplaceByMatch(ctx, 4, []buzzerbeater.Hit{{EventIndex: 3}}); err != nil {
		t.Fatalf("replace again: %v", err)
	}

	got, err := repo.ListByMatch(ctx, 4)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].EventIndex != 3 || got[0].MatchID != 4 {
		t.Fatalf("unexpected hits after replace: %+v", got)
	}

	if err := repo.ReplaceByMatch(ctx, 4, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, _ = repo.ListByMatch(ctx, 4)
	if len(got) != 0 {
		t.Fatalf("expected no hits after clearing, got %d", len(got))
	}
}
