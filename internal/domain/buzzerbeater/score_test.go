package buzzerbeater

import (
	"testing"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

func madeShot(team, clock int, shotType playbyplay.ShotType) playbyplay.Play {
	return playbyplay.Play{
		Kind:      playbyplay.PlayKindShot,
		Team:      team,
		GameClock: clock,
		Shot:      playbyplay.ShotPlay{Type: shotType, Result: playbyplay.ShotResultMade},
	}
}

func madeFreeThrow(team, clock int) playbyplay.Play {
	return playbyplay.Play{
		Kind:      playbyplay.PlayKindFreeThrow,
		Team:      team,
		GameClock: clock,
		FreeThrow: playbyplay.FreeThrowPlay{Type: playbyplay.FreeThrowOneOfOne, Result: playbyplay.ShotResultMade},
	}
}

func TestScoreSnapshots_FoldsInOrder(t *testing.T) {
	t.Parallel()

	plays := []playbyplay.Play{
		madeShot(playbyplay.SideHome, 10, playbyplay.ShotTypeLayup),
		{Kind: playbyplay.PlayKindShot, Team: playbyplay.SideAway, GameClock: 20, Shot: playbyplay.ShotPlay{Type: playbyplay.ShotTypeJumpShot, Result: playbyplay.ShotResultMissed}},
		madeShot(playbyplay.SideAway, 30, playbyplay.ShotTypeThreePoint),
		{Kind: playbyplay.PlayKindOther, Team: playbyplay.SideHome, GameClock: 35},
		madeFreeThrow(playbyplay.SideHome, 40),
		madeShot(playbyplay.SideHome, 40, playbyplay.ShotTypeLayup),
	}

	snaps := ScoreSnapshots(plays)
	if len(snaps) != 4 {
		t.Fatalf("expected 4 snapshots, got=%d", len(snaps))
	}
	if _, ok := snaps[1]; ok {
		t.Fatalf("missed shot must not get a snapshot")
	}
	if _, ok := snaps[3]; ok {
		t.Fatalf("non-scoring play must not get a snapshot")
	}

	want := map[int]Snapshot{
		0: {Before: Score{0, 0}, After: Score{2, 0}},
		2: {Before: Score{2, 0}, After: Score{2, 3}},
		4: {Before: Score{2, 3}, After: Score{3, 3}},
		5: {Before: Score{3, 3}, After: Score{5, 3}},
	}
	for idx, snap := range want {
		if snaps[idx] != snap {
			t.Fatalf("play %d: got=%+v want=%+v", idx, snaps[idx], snap)
		}
	}

	if final := FinalScore(plays); final != (Score{Home: 5, Away: 3}) {
		t.Fatalf("unexpected final score: %+v", final)
	}
}

func TestScoreSnapshots_IdentityNotValue(t *testing.T) {
	t.Parallel()

	// Two identical plays must produce two distinct snapshots.
	plays := []playbyplay.Play{
		madeFreeThrow(playbyplay.SideAway, 100),
		madeFreeThrow(playbyplay.SideAway, 100),
	}

	snaps := ScoreSnapshots(plays)
	if snaps[0].After != (Score{0, 1}) || snaps[1].After != (Score{0, 2}) {
		t.Fatalf("unexpected snapshots: %+v", snaps)
	}
}

func TestScoreSnapshots_PointDeltaMatchesPlayValue(t *testing.T) {
	t.Parallel()

	plays := []playbyplay.Play{
		madeShot(playbyplay.SideHome, 1, playbyplay.ShotTypeDunk),
		madeShot(playbyplay.SideAway, 2, playbyplay.ShotTypeDeepThree),
		madeFreeThrow(playbyplay.SideAway, 3),
		madeShot(playbyplay.SideHome, 4, playbyplay.ShotTypeCornerThree),
	}

	snaps := ScoreSnapshots(plays)
	var last Score
	for i, play := range plays {
		snap := snaps[i]
		side := play.Side()
		other := 1 - side
		if got := snap.After.Side(side) - snap.Before.Side(side); got != play.Points() {
			t.Fatalf("play %d: delta=%d want=%d", i, got, play.Points())
		}
		if snap.After.Side(other) != snap.Before.Side(other) {
			t.Fatalf("play %d: non-attacking side changed", i)
		}
		last = snap.After
	}
	if last != FinalScore(plays) {
		t.Fatalf("last snapshot %+v differs from final score %+v", last, FinalScore(plays))
	}
}
