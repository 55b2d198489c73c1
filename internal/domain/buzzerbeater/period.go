package buzzerbeater

import (
	"sort"
	"strconv"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

const (
	QuarterSeconds    = 720
	RegulationSeconds = 4 * QuarterSeconds
	OvertimeSeconds   = 300
	// WindowSeconds is how far before a period end a buzzerbeater may happen.
	WindowSeconds     = 5
)

// PeriodEndsFromEvents collects the distinct clocks of explicit end-of-period markers.
func PeriodEndsFromEvents(events []playbyplay.RawEvent) []int {
	seen := make(map[int]struct{})
	for _, ev := range events {
		if ev.Comment == playbyplay.EndOfPeriodComment {
			seen[ev.GameClock] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for clock := range seen {
		out = append(out, clock)
	}
	sort.Ints(out)
	return out
}

// BuildPeriodEnds computes the regulation/overtime schedule up to maxClock.
func BuildPeriodEnds(maxClock int) []int {
	out := make([]int, 0, 8)
	for i := 1; i <= 4; i++ {
		if end := QuarterSeconds * i; end <= maxClock {
			out = append(out, end)
		}
	}
	if maxClock > RegulationSeconds {
		extra := maxClock - RegulationSeconds
		overtimes := (extra + OvertimeSeconds - 1) / OvertimeSeconds
		for i := 1; i <= overtimes; i++ {
			out = append(out, RegulationSeconds+OvertimeSeconds*i)
		}
	}
	if len(out) == 0 {
		out = append(out, RegulationSeconds)
	}
	return out
}

// ResolvePeriodEnds prefers explicit markers verbatim and falls back to the computed schedule.
func ResolvePeriodEnds(events []playbyplay.RawEvent) ([]int, PeriodSource) {
	if ends := PeriodEndsFromEvents(events); len(ends) > 0 {
		return ends, PeriodSourceMarkers
	}
	return BuildPeriodEnds(playbyplay.MaxClock(events, RegulationSeconds)), PeriodSourceFallback
}

// MatchPeriodEnd returns the first end whose window contains clock.
func MatchPeriodEnd(clock int, ends []int) (int, bool) {
	for _, end := range ends {
		if end-WindowSeconds <= clock && clock <= end {
			return end, true
		}
	}
	return 0, false
}

func PeriodLabelFromEnd(end int, ends []int) string {
	for i, candidate := range ends {
		if candidate == end {
			return periodLabelForIndex(i + 1)
		}
	}
	return PeriodLabel(end)
}

// PeriodLabel derives the period name from a clock value alone.
func PeriodLabel(clock int) string {
	if clock <= RegulationSeconds {
		quarter := (clock + QuarterSeconds - 1) / QuarterSeconds
		quarter = max(1, min(4, quarter))
		return "Q" + strconv.Itoa(quarter)
	}
	overtime := (clock - RegulationSeconds + OvertimeSeconds - 1) / OvertimeSeconds
	return "OT" + strconv.Itoa(overtime)
}

func periodLabelForIndex(idx int) string {
	if idx <= 4 {
		return "Q" + strconv.Itoa(idx)
	}
	return "OT" + strconv.Itoa(idx-4)
}
