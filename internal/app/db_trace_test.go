package app

import (
	"strings"
	"testing"
)

func TestFormatDBQueryForTrace(t *testing.T) {
	t.Run("collapses whitespace", func(t *testing.T) {
		got := formatDBQueryForTrace("  SELECT id\n\tFROM match_reports\n  WHERE match_id = $1  ")
		want := "SELECT id FROM match_reports WHERE match_id = $1"
		if got != want {
			t.Fatalf("formatDBQueryForTrace()=%q want=%q", got, want)
		}
	})

	t.Run("truncates long queries", func(t *testing.T) {
		got := formatDBQueryForTrace("SELECT " + strings.Repeat("x, ", 400) + "y")
		if len(got) != maxTracedQueryLength+3 || !strings.HasSuffix(got, "...") {
			t.Fatalf("expected truncated query of %d bytes, got %d", maxTracedQueryLength+3, len(got))
		}
	})

	t.Run("empty stays empty", func(t *testing.T) {
		if got := formatDBQueryForTrace("   "); got != "" {
			t.Fatalf("expected empty query, got %q", got)
		}
	})
}
