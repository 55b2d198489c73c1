package buzzerbeater

import "github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"

// Link attaches the scoring play behind a hit. It scans [end-5, end] for scored plays of the
// hit's team, keeping the last shot and the last free throw; a shot always wins.
func Link(hit *Hit, plays []playbyplay.Play, snapshots map[int]Snapshot, end int) {
	if hit == nil {
		return
	}

	windowStart := end - WindowSeconds
	lastShot, lastFreeThrow := -1, -1
	for i, play := range plays {
		if play.Clock() < windowStart || play.Clock() > end {
			continue
		}
		if play.Side() != hit.TeamIndex || !play.Scored() {
			continue
		}
		switch play.Kind {
		case playbyplay.PlayKindShot:
			lastShot = i
		case playbyplay.PlayKindFreeThrow:
			lastFreeThrow = i
		}
	}

	hit.Shot = nil
	hit.FreeThrow = nil
	hit.Score = nil

	chosen := lastShot
	if chosen < 0 {
		chosen = lastFreeThrow
	}
	if chosen < 0 {
		hit.LinkedKind = LinkedNone
		return
	}

	play := plays[chosen]
	switch play.Kind {
	case playbyplay.PlayKindShot:
		hit.LinkedKind = LinkedShot
		detail := &ShotDetail{
			Type:      play.Shot.Type,
			TypeLabel: play.Shot.Type.Label(),
			Result:    play.Shot.Result,
		}
		if play.Shot.Position != nil {
			pos := *play.Shot.Position
			detail.Position = &pos
		}
		if dist, ok := ShotDistance(play.Shot.Position, play.Side()); ok {
			detail.DistancePx = &dist.Pixels
			detail.DistanceFt = &dist.Feet
		}
		hit.Shot = detail
	case playbyplay.PlayKindFreeThrow:
		hit.LinkedKind = LinkedFreeThrow
		hit.FreeThrow = &FreeThrowDetail{
			Type:      play.FreeThrow.Type,
			TypeLabel: play.FreeThrow.Type.Label(),
			Result:    play.FreeThrow.Result,
		}
	}

	if snap, ok := snapshots[chosen]; ok {
		hit.Score = &snap
	}
}
