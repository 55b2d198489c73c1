package memory

import "github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"

const SeedMatchID int64 = 1001

func shot(team, clock int, shotType playbyplay.ShotType, data string, players ...string) playbyplay.RawEvent {
	return playbyplay.RawEvent{
		Team:      team,
		GameClock: clock,
		RealClock: clock * 2,
		Type:      int(shotType),
		Result:    int(playbyplay.ShotResultMade),
		Data:      data,
		Players:   players,
	}
}

func marker(clock, eventType int) playbyplay.RawEvent {
	return playbyplay.RawEvent{Team: playbyplay.TeamNone, GameClock: clock, RealClock: clock * 2, Type: eventType}
}

// SeedReports returns a short demo match with buzzerbeaters at the end of Q1 and Q4.
func SeedReports() []playbyplay.Report {
	events := []playbyplay.RawEvent{
		marker(0, playbyplay.EventTypePeriodStart),
		shot(playbyplay.SideHome, 35, playbyplay.ShotTypeLayup, "40,90", "Ana Ruiz"),
		shot(playbyplay.SideAway, 80, playbyplay.ShotTypeJumpShot, "300,110", "Joel Park"),
		shot(playbyplay.SideHome, 717, playbyplay.ShotTypeThreePoint, "120,40", "Mia Stone"),
		{Team: playbyplay.SideHome, GameClock: 718, RealClock: 1436, Type: playbyplay.EventTypeBuzzerbeater, Players: []string{"Mia Stone"}},
		marker(720, playbyplay.EventTypePeriodEnd),
		marker(720, playbyplay.EventTypePeriodStart),
		shot(playbyplay.SideAway, 1400, playbyplay.ShotTypeDunk, "340,96", "Joel Park"),
		marker(1440, playbyplay.EventTypePeriodEnd),
		marker(1440, playbyplay.EventTypePeriodStart),
		shot(playbyplay.SideHome, 2000, playbyplay.ShotTypeHook, "60,100", "Ana Ruiz"),
		marker(2160, playbyplay.EventTypePeriodEnd),
		marker(2160, playbyplay.EventTypePeriodStart),
		{Team: playbyplay.SideAway, GameClock: 2877, RealClock: 5754, Type: int(playbyplay.FreeThrowTwoOfTwo), Result: int(playbyplay.ShotResultMade), Players: []string{"Joel Park"}},
		{Team: playbyplay.SideAway, GameClock: 2878, RealClock: 5756, Type: playbyplay.EventTypeBuzzerbeater, Players: []string{"Joel Park"}},
		marker(2880, playbyplay.EventTypePeriodEnd),
		marker(2880, playbyplay.EventTypeGameEnd),
	}

	return []playbyplay.Report{
		{
			MatchID:  SeedMatchID,
			HomeTeam: playbyplay.Team{ID: 1, Name: "Harbor Cats", ShortName: "HAR"},
			AwayTeam: playbyplay.Team{ID: 2, Name: "Valley Elk", ShortName: "VAL"},
			Events:   events,
		},
	}
}
