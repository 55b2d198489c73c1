package buzzerbeater

import "github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"

// LinkedKind tells which scoring play a buzzerbeater was attributed to.
type LinkedKind string

const (
	LinkedShot      LinkedKind = "shot"
	LinkedFreeThrow LinkedKind = "free_throw"
	LinkedNone      LinkedKind = "none"
)

type PeriodSource string

const (
	PeriodSourceMarkers  PeriodSource = "markers"
	PeriodSourceFallback PeriodSource = "fallback"
)

// Score is a (home, away) points pair.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

func (s Score) Side(side int) int {
	if side == playbyplay.SideHome {
		return s.Home
	}
	return s.Away
}

func (s Score) add(side, points int) Score {
	if side == playbyplay.SideHome {
		s.Home += points
	} else {
		s.Away += points
	}
	return s
}

// Snapshot holds the score immediately before and after one scoring play.
type Snapshot struct {
	Before Score `json:"before"`
	After  Score `json:"after"`
}

// Distance is the release-point distance to the attacked basket.
type Distance struct {
	Pixels float64 `json:"pixels"`
	Feet   float64 `json:"feet"`
}

type ShotDetail struct {
	Type       playbyplay.ShotType   `json:"type"`
	TypeLabel  string                `json:"type_label,omitempty"`
	Result     playbyplay.ShotResult `json:"result"`
	Position   *playbyplay.Point     `json:"position,omitempty"`
	DistancePx *float64              `json:"distance_px,omitempty"`
	DistanceFt *float64              `json:"distance_ft,omitempty"`
}

type FreeThrowDetail struct {
	Type      playbyplay.FreeThrowType `json:"type"`
	TypeLabel string                   `json:"type_label"`
	Result    playbyplay.ShotResult    `json:"result"`
}

// Hit is one detected buzzerbeater together with the scoring play it was linked to.
type Hit struct {
	MatchID    int64            `json:"match_id"`
	EventIndex int              `json:"event_index"`
	Team       string           `json:"team"`
	TeamIndex  int              `json:"team_index"`
	Period     string           `json:"period"`
	EventType  int              `json:"event_type"`
	Result     int              `json:"result"`
	Variation  int              `json:"variation"`
	GameClock  int              `json:"gameclock"`
	RealClock  int              `json:"realclock"`
	Data       string           `json:"data,omitempty"`
	Comment    string           `json:"comment"`
	LinkedKind LinkedKind       `json:"linked_event_kind"`
	Shot       *ShotDetail      `json:"shot,omitempty"`
	FreeThrow  *FreeThrowDetail `json:"free_throw,omitempty"`
	Score      *Snapshot        `json:"score,omitempty"`
}

// Analysis is the outcome of one pipeline run over a match report.
type Analysis struct {
	MatchID      int64        `json:"match_id"`
	PeriodEnds   []int        `json:"period_ends"`
	PeriodSource PeriodSource `json:"period_source"`
	FinalScore   Score        `json:"final_score"`
	Hits         []Hit        `json:"hits"`
}
