package postgres

import (
	"database/sql"
	"time"
)

const buzzerbeaterHitsTable = "buzzerbeater_hits"

type buzzerbeaterHitTableModel struct {
	ID         int64     `db:"id"`
	MatchID    int64     `db:"match_id"`
	EventIndex int       `db:"event_index"`
	Payload    []byte    `db:"payload"`
	CreatedAt  time.Time `db:"created_at"`
}

// buzzerbeaterHitInsertModel keeps the queryable fields in columns and the full hit in payload.
type buzzerbeaterHitInsertModel struct {
	MatchID        int64         `db:"match_id"`
	EventIndex     int           `db:"event_index"`
	TeamIndex      int           `db:"team_index"`
	TeamName       string        `db:"team_name"`
	Period         string        `db:"period"`
	GameClock      int           `db:"game_clock"`
	RealClock      int           `db:"real_clock"`
	LinkedKind     string        `db:"linked_kind"`
	ScoreHomeAfter sql.NullInt64 `db:"score_home_after"`
	ScoreAwayAfter sql.NullInt64 `db:"score_away_after"`
	Payload        []byte        `db:"payload"`
}
