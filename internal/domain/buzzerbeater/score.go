package buzzerbeater

import "github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"

// ScoreSnapshots folds the timeline in order and returns before/after scores keyed by play index.
func ScoreSnapshots(plays []playbyplay.Play) map[int]Snapshot {
	running := Score{}
	out := make(map[int]Snapshot)
	for i, play := range plays {
		points := play.Points()
		if points == 0 {
			continue
		}
		before := running
		running = running.add(play.Side(), points)
		out[i] = Snapshot{Before: before, After: running}
	}
	return out
}

// FinalScore sums every scoring play of the timeline.
func FinalScore(plays []playbyplay.Play) Score {
	out := Score{}
	for _, play := range plays {
		if points := play.Points(); points > 0 {
			out = out.add(play.Side(), points)
		}
	}
	return out
}
