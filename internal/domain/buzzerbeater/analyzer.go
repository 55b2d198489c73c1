package buzzerbeater

import "github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"

// Analyze runs the full detection pipeline over one report. The report's events must already
// carry their commentary. The input is never modified.
func Analyze(report playbyplay.Report) Analysis {
	plays := playbyplay.Normalize(report.Events)
	snapshots := ScoreSnapshots(plays)
	ends, source := ResolvePeriodEnds(report.Events)

	candidates := MatchCandidates(report.Events, ends)
	hits := make([]Hit, 0, len(candidates))
	for _, candidate := range candidates {
		ev := report.Events[candidate.EventIndex]
		hit := Hit{
			MatchID:    report.MatchID,
			EventIndex: candidate.EventIndex,
			Team:       report.TeamName(ev.Team),
			TeamIndex:  ev.Team,
			Period:     candidate.Period,
			EventType:  ev.Type,
			Result:     ev.Result,
			Variation:  ev.Variation,
			GameClock:  ev.GameClock,
			RealClock:  ev.RealClock,
			Data:       ev.Data,
			Comment:    ev.Comment,
		}
		Link(&hit, plays, snapshots, candidate.PeriodEnd)
		hits = append(hits, hit)
	}

	return Analysis{
		MatchID:      report.MatchID,
		PeriodEnds:   ends,
		PeriodSource: source,
		FinalScore:   FinalScore(plays),
		Hits:         hits,
	}
}
