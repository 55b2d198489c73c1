package buzzerbeater

import (
	"strings"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

const buzzerbeaterPrefix = "A buzzerbeater for "

// IsBuzzerbeaterComment matches the exact "A buzzerbeater for <name>!" template.
func IsBuzzerbeaterComment(comment string) bool {
	return strings.HasPrefix(comment, buzzerbeaterPrefix) && strings.HasSuffix(comment, "!")
}

// Candidate is a raw event selected by the matcher.
type Candidate struct {
	EventIndex int
	PeriodEnd  int
	Period     string
}

// MatchCandidates selects buzzerbeater events whose clock falls in an end-of-period window.
func MatchCandidates(events []playbyplay.RawEvent, ends []int) []Candidate {
	out := make([]Candidate, 0)
	for i, ev := range events {
		end, ok := MatchPeriodEnd(ev.GameClock, ends)
		if !ok {
			continue
		}
		if !IsBuzzerbeaterComment(ev.Comment) {
			continue
		}
		out = append(out, Candidate{
			EventIndex: i,
			PeriodEnd:  end,
			Period:     PeriodLabelFromEnd(end, ends),
		})
	}
	return out
}
