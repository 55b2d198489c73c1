package buzzerbeater

import (
	"testing"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

func TestLink_PrefersShotOverFreeThrow(t *testing.T) {
	t.Parallel()

	shot := madeShot(playbyplay.SideHome, 716, playbyplay.ShotTypeJumpShot)
	shot.Shot.Position = &playbyplay.Point{X: 320, Y: 96}
	plays := []playbyplay.Play{
		shot,
		madeFreeThrow(playbyplay.SideHome, 719),
	}
	snaps := ScoreSnapshots(plays)

	hit := Hit{TeamIndex: playbyplay.SideHome}
	Link(&hit, plays, snaps, 720)

	if hit.LinkedKind != LinkedShot {
		t.Fatalf("expected shot link, got %s", hit.LinkedKind)
	}
	if hit.FreeThrow != nil {
		t.Fatalf("free throw detail must not be attached")
	}
	if hit.Shot == nil || hit.Shot.Type != playbyplay.ShotTypeJumpShot || hit.Shot.TypeLabel != "JUMP_SHOT" {
		t.Fatalf("unexpected shot detail: %+v", hit.Shot)
	}
	if hit.Shot.DistancePx == nil || *hit.Shot.DistancePx != 27 {
		t.Fatalf("unexpected pixel distance: %v", hit.Shot.DistancePx)
	}
	if hit.Score == nil || hit.Score.After != (Score{Home: 2}) {
		t.Fatalf("unexpected score: %+v", hit.Score)
	}
}

func TestLink_FallsBackToFreeThrow(t *testing.T) {
	t.Parallel()

	plays := []playbyplay.Play{
		madeShot(playbyplay.SideHome, 700, playbyplay.ShotTypeLayup),
		madeShot(playbyplay.SideAway, 717, playbyplay.ShotTypeLayup),
		madeFreeThrow(playbyplay.SideHome, 718),
		madeFreeThrow(playbyplay.SideHome, 719),
	}
	snaps := ScoreSnapshots(plays)

	hit := Hit{TeamIndex: playbyplay.SideHome}
	Link(&hit, plays, snaps, 720)

	if hit.LinkedKind != LinkedFreeThrow {
		t.Fatalf("expected free throw link, got %s", hit.LinkedKind)
	}
	if hit.Shot != nil {
		t.Fatalf("shot detail must not be attached")
	}
	if hit.FreeThrow == nil || hit.FreeThrow.TypeLabel != "ONE_OF_ONE" {
		t.Fatalf("unexpected free throw detail: %+v", hit.FreeThrow)
	}
	want := Snapshot{Before: Score{Home: 3, Away: 2}, After: Score{Home: 4, Away: 2}}
	if hit.Score == nil || *hit.Score != want {
		t.Fatalf("expected last free throw snapshot %+v, got %+v", want, hit.Score)
	}
}

func TestLink_NoQualifyingPlay(t *testing.T) {
	t.Parallel()

	plays := []playbyplay.Play{
		madeShot(playbyplay.SideHome, 714, playbyplay.ShotTypeLayup),
		madeShot(playbyplay.SideAway, 718, playbyplay.ShotTypeLayup),
		{Kind: playbyplay.PlayKindShot, Team: playbyplay.SideHome, GameClock: 719, Shot: playbyplay.ShotPlay{Type: playbyplay.ShotTypeLayup, Result: playbyplay.ShotResultBlocked}},
		madeShot(playbyplay.SideHome, 721, playbyplay.ShotTypeLayup),
	}

	hit := Hit{TeamIndex: playbyplay.SideHome}
	Link(&hit, plays, ScoreSnapshots(plays), 720)

	if hit.LinkedKind != LinkedNone {
		t.Fatalf("expected none link, got %s", hit.LinkedKind)
	}
	if hit.Shot != nil || hit.FreeThrow != nil || hit.Score != nil {
		t.Fatalf("expected no detail, got %+v", hit)
	}
}

func TestLink_ShotWithoutPositionHasNoDistance(t *testing.T) {
	t.Parallel()

	plays := []playbyplay.Play{madeShot(playbyplay.SideAway, 2880, playbyplay.ShotTypeHalfCourt)}
	hit := Hit{TeamIndex: playbyplay.SideAway}
	Link(&hit, plays, ScoreSnapshots(plays), 2880)

	if hit.LinkedKind != LinkedShot {
		t.Fatalf("expected shot link, got %s", hit.LinkedKind)
	}
	if hit.Shot.Position != nil || hit.Shot.DistancePx != nil || hit.Shot.DistanceFt != nil {
		t.Fatalf("expected absent geometry, got %+v", hit.Shot)
	}
	if hit.Score == nil || hit.Score.After != (Score{Away: 3}) {
		t.Fatalf("unexpected score: %+v", hit.Score)
	}
}
