package postgres

import "time"

const matchReportsTable = "match_reports"

type matchReportTableModel struct {
	MatchID           int64     `db:"match_id"`
	HomeTeamID        int64     `db:"home_team_id"`
	HomeTeamName      string    `db:"home_team_name"`
	HomeTeamShortName string    `db:"home_team_short_name"`
	AwayTeamID        int64     `db:"away_team_id"`
	AwayTeamName      string    `db:"away_team_name"`
	AwayTeamShortName string    `db:"away_team_short_name"`
	EventCount        int       `db:"event_count"`
	Events            []byte    `db:"events"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type matchReportInsertModel struct {
	MatchID           int64  `db:"match_id"`
	HomeTeamID        int64  `db:"home_team_id"`
	HomeTeamName      string `db:"home_team_name"`
	HomeTeamShortName string `db:"home_team_short_name"`
	AwayTeamID        int64  `db:"away_team_id"`
	AwayTeamName      string `db:"away_team_name"`
	AwayTeamShortName string `db:"away_team_short_name"`
	EventCount        int    `db:"event_count"`
	Events            []byte `db:"events"`
}
