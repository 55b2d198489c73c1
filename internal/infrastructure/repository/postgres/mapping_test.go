package postgres

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

func TestReportRowRoundTrip(t *testing.T) {
	t.Parallel()

	report := playbyplay.Report{
		MatchID:  12,
		HomeTeam: playbyplay.Team{ID: 1, Name: "Harbor Cats", ShortName: "HAR"},
		AwayTeam: playbyplay.Team{ID: 2, Name: "Valley Elk", ShortName: "VAL"},
		Events: []playbyplay.RawEvent{
			{Team: playbyplay.SideHome, GameClock: 719, Type: int(playbyplay.ShotTypeThreePoint), Result: 1, Data: "40,96", Players: []string{"Ana Ruiz"}},
			{Team: playbyplay.TeamNone, GameClock: 720, Type: playbyplay.EventTypePeriodEnd, Comment: playbyplay.EndOfPeriodComment},
		},
	}

	model, err := reportInsertModel(report)
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	if model.EventCount != 2 || model.HomeTeamShortName != "HAR" {
		t.Fatalf("unexpected insert model: %+v", model)
	}

	got, err := reportFromRow(matchReportTableModel{
		MatchID:           model.MatchID,
		HomeTeamID:        model.HomeTeamID,
		HomeTeamName:      model.HomeTeamName,
		HomeTeamShortName: model.HomeTeamShortName,
		AwayTeamID:        model.AwayTeamID,
		AwayTeamName:      model.AwayTeamName,
		AwayTeamShortName: model.AwayTeamShortName,
		EventCount:        model.EventCount,
		Events:            model.Events,
	})
	if err != nil {
		t.Fatalf("decode row: %v", err)
	}
	if !reflect.DeepEqual(got, report) {
		t.Fatalf("report changed through storage mapping:\nwant: %+v\ngot:  %+v", report, got)
	}
}

func TestReportFromRow_RejectsCorruptEvents(t *testing.T) {
	t.Parallel()

	if _, err := reportFromRow(matchReportTableModel{MatchID: 3, Events: []byte("{not json")}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestHitInsertModel(t *testing.T) {
	t.Parallel()

	hit := buzzerbeater.Hit{
		EventIndex: 4,
		Team:       "Harbor Cats",
		TeamIndex:  playbyplay.SideHome,
		Period:     "Q1",
		GameClock:  719,
		LinkedKind: buzzerbeater.LinkedShot,
		Score:      &buzzerbeater.Snapshot{After: buzzerbeater.Score{Home: 3, Away: 2}},
	}

	model, err := hitInsertModel(12, hit)
	if err != nil {
		t.Fatalf("build hit model: %v", err)
	}
	if model.MatchID != 12 || model.LinkedKind != "shot" {
		t.Fatalf("unexpected model: %+v", model)
	}
	if !model.ScoreHomeAfter.Valid || model.ScoreHomeAfter.Int64 != 3 || model.ScoreAwayAfter.Int64 != 2 {
		t.Fatalf("unexpected score columns: %+v %+v", model.ScoreHomeAfter, model.ScoreAwayAfter)
	}

	got, err := hitFromRow(buzzerbeaterHitTableModel{ID: 1, MatchID: 12, EventIndex: 4, Payload: model.Payload})
	if err != nil {
		t.Fatalf("decode hit: %v", err)
	}
	if got.MatchID != 12 || got.Team != "Harbor Cats" || got.Score == nil || got.Score.After.Home != 3 {
		t.Fatalf("unexpected decoded hit: %+v", got)
	}
}

func TestHitInsertModel_NoScore(t *testing.T) {
	t.Parallel()

	model, err := hitInsertModel(1, buzzerbeater.Hit{LinkedKind: buzzerbeater.LinkedNone})
	if err != nil {
		t.Fatalf("build hit model: %v", err)
	}
	if model.ScoreHomeAfter.Valid || model.ScoreAwayAfter.Valid {
		t.Fatalf("expected null score columns, got %+v", model)
	}
}
