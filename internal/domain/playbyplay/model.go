package playbyplay

const (
	SideHome = 0
	SideAway = 1
	// TeamNone marks events that do not belong to either team (period markers, timeouts).
	TeamNone = -1
)

// Team identifies one side of a match report.
type Team struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"short_name"`
}

// RawEvent is one log entry from a match report.
type RawEvent struct {
	Team      int      `json:"team" validate:"gte=-1,lte=1"`
	GameClock int      `json:"gameclock" validate:"gte=0"`
	RealClock int      `json:"realclock"`
	Type      int      `json:"type"`
	Result    int      `json:"result"`
	Variation int      `json:"variation"`
	Data      string   `json:"data,omitempty"`
	Players   []string `json:"players,omitempty"`
	Comment   string   `json:"comment,omitempty"`
}

// HasTeam reports whether the event belongs to the home or away side.
func (e RawEvent) HasTeam() bool {
	return e.Team == SideHome || e.Team == SideAway
}

// Report is a parsed match report: both teams plus the ordered event log.
type Report struct {
	MatchID  int64      `json:"match_id" validate:"gt=0"`
	HomeTeam Team       `json:"home_team" validate:"required"`
	AwayTeam Team       `json:"away_team" validate:"required"`
	Events   []RawEvent `json:"events" validate:"dive"`
}

func (r Report) Teams() [2]Team {
	return [2]Team{r.HomeTeam, r.AwayTeam}
}

// TeamName returns the display name for a side, empty for TeamNone.
func (r Report) TeamName(side int) string {
	switch side {
	case SideHome:
		return r.HomeTeam.Name
	case SideAway:
		return r.AwayTeam.Name
	default:
		return ""
	}
}

// MaxClock returns the largest game clock in events, or fallback for an empty log.
func MaxClock(events []RawEvent, fallback int) int {
	if len(events) == 0 {
		return fallback
	}
	out := events[0].GameClock
	for _, ev := range events[1:] {
		if ev.GameClock > out {
			out = ev.GameClock
		}
	}
	return out
}
