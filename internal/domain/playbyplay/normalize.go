package playbyplay

import (
	"strconv"
	"strings"
)

// Normalize converts raw events into typed plays, keeping the original order.
// Events without a team are skipped.
func Normalize(events []RawEvent) []Play {
	out := make([]Play, 0, len(events))
	for _, ev := range events {
		if !ev.HasTeam() {
			continue
		}
		out = append(out, NormalizeEvent(ev))
	}
	return out
}

func NormalizeEvent(ev RawEvent) Play {
	play := Play{
		Kind:      PlayKindOther,
		Team:      ev.Team,
		GameClock: ev.GameClock,
	}

	switch {
	case ev.Type >= twoPointMin && ev.Type < freeThrowMin:
		play.Kind = PlayKindShot
		play.Shot = ShotPlay{
			Type:     ShotType(ev.Type),
			Result:   ShotResult(ev.Result),
			Position: ParsePoint(ev.Data),
		}
	case ev.Type >= freeThrowMin && ev.Type < freeThrowMax:
		play.Kind = PlayKindFreeThrow
		play.FreeThrow = FreeThrowPlay{
			Type:   FreeThrowType(ev.Type),
			Result: ShotResult(ev.Result),
		}
	}

	return play
}

// ParsePoint decodes an "x,y" pixel payload. Anything else yields nil.
func ParsePoint(raw string) *Point {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return nil
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}

	return &Point{X: x, Y: y}
}
