package postgres

import (
	"context"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	qb "github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/querybuilder"
)

const upsertMatchReportSuffix = `ON CONFLICT (match_id) DO UPDATE SET
    home_team_id = EXCLUDED.home_team_id,
    home_team_name = EXCLUDED.home_team_name,
    home_team_short_name = EXCLUDED.home_team_short_name,
    away_team_id = EXCLUDED.away_team_id,
    away_team_name = EXCLUDED.away_team_name,
    away_team_short_name = EXCLUDED.away_team_short_name,
    event_count = EXCLUDED.event_count,
    events = EXCLUDED.events,
    updated_at = NOW()`

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) GetByMatchID(ctx context.Context, matchID int64) (playbyplay.Report, bool, error) {
	query, args, err := qb.Select(
		"match_id",
		"home_team_id",
		"home_team_name",
		"home_team_short_name",
		"away_team_id",
		"away_team_name",
		"away_team_short_name",
		"event_count",
		"events",
		"created_at",
		"updated_at",
	).
		From(matchReportsTable).
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return playbyplay.Report{}, false, crerr.Wrap(err, "build get match report query")
	}

	var row matchReportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playbyplay.Report{}, false, nil
		}
		return playbyplay.Report{}, false, crerr.Wrapf(err, "get match report match=%d", matchID)
	}

	report, err := reportFromRow(row)
	if err != nil {
		return playbyplay.Report{}, false, err
	}
	return report, true, nil
}

func (r *ReportRepository) Upsert(ctx context.Context, report playbyplay.Report) error {
	model, err := reportInsertModel(report)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel(matchReportsTable, model, upsertMatchReportSuffix)
	if err != nil {
		return crerr.Wrap(err, "build upsert match report query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "upsert match report match=%d", report.MatchID)
	}
	return nil
}

func reportInsertModel(report playbyplay.Report) (matchReportInsertModel, error) {
	events := report.Events
	if events == nil {
		events = []playbyplay.RawEvent{}
	}
	payload, err := sonic.Marshal(events)
	if err != nil {
		return matchReportInsertModel{}, crerr.Wrapf(err, "encode events match=%d", report.MatchID)
	}

	return matchReportInsertModel{
		MatchID:           report.MatchID,
		HomeTeamID:        report.HomeTeam.ID,
		HomeTeamName:      report.HomeTeam.Name,
		HomeTeamShortName: report.HomeTeam.ShortName,
		AwayTeamID:        report.AwayTeam.ID,
		AwayTeamName:      report.AwayTeam.Name,
		AwayTeamShortName: report.AwayTeam.ShortName,
		EventCount:        len(report.Events),
		Events:            payload,
	}, nil
}

func reportFromRow(row matchReportTableModel) (playbyplay.Report, error) {
	events := make([]playbyplay.RawEvent, 0, row.EventCount)
	if len(row.Events) > 0 {
		if err := sonic.Unmarshal(row.Events, &events); err != nil {
			return playbyplay.Report{}, crerr.Wrapf(err, "decode events match=%d", row.MatchID)
		}
	}

	return playbyplay.Report{
		MatchID: row.MatchID,
		HomeTeam: playbyplay.Team{
			ID:        row.HomeTeamID,
			Name:      row.HomeTeamName,
			ShortName: row.HomeTeamShortName,
		},
		AwayTeam: playbyplay.Team{
			ID:        row.AwayTeamID,
			Name:      row.AwayTeamName,
			ShortName: row.AwayTeamShortName,
		},
		Events: events,
	}, nil
}
