package memory

import (
	"testing"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

func TestSeedReports_AnalyzeToTwoBuzzerbeaters(t *testing.T) {
	t.Parallel()

	report := SeedReports()[0]
	report.Events = playbyplay.Annotate(report.Events, report.Teams(), playbyplay.NewTemplateCommentator(nil))

	got := buzzerbeater.Analyze(report)
	if got.PeriodSource != buzzerbeater.PeriodSourceMarkers {
		t.Fatalf("expected marker period ends, got %s", got.PeriodSource)
	}
	if len(got.Hits) != 2 {
		t.Fatalf("expected two hits, got %d", len(got.Hits))
	}

	first, last := got.Hits[0], got.Hits[1]
	if first.Period != "Q1" || first.LinkedKind != buzzerbeater.LinkedShot {
		t.Fatalf("unexpected first hit: %+v", first)
	}
	if first.Score == nil || first.Score.After != (buzzerbeater.Score{Home: 5, Away: 2}) {
		t.Fatalf("unexpected first hit score: %+v", first.Score)
	}
	if last.Period != "Q4" || last.LinkedKind != buzzerbeater.LinkedFreeThrow {
		t.Fatalf("unexpected last hit: %+v", last)
	}
	if last.Score == nil || last.Score.After != (buzzerbeater.Score{Home: 7, Away: 5}) {
		t.Fatalf("unexpected last hit score: %+v", last.Score)
	}
	if got.FinalScore != (buzzerbeater.Score{Home: 7, Away: 5}) {
		t.Fatalf("unexpected final score: %+v", got.FinalScore)
	}
}
