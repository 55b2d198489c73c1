package postgres

import (
	"context"
	"database/sql"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	qb "github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/querybuilder"
)

type HitRepository struct {
	db *sqlx.DB
}

func NewHitRepository(db *sqlx.DB) *HitRepository {
	return &HitRepository{db: db}
}

// ReplaceByMatch swaps the stored hits of one match in a single transaction.
func (r *HitRepository) ReplaceByMatch(ctx context.Context, matchID int64, hits []buzzerbeater.Hit) error {
	models := make([]buzzerbeaterHitInsertModel, 0, len(hits))
	for _, hit := range hits {
		model, err := hitInsertModel(matchID, hit)
		if err != nil {
			return err
		}
		models = append(models, model)
	}

	return withTx(ctx, r.db, "replace buzzerbeater hits", func(tx *sqlx.Tx) error {
		deleteSQL, deleteArgs, err := qb.DeleteFrom(buzzerbeaterHitsTable).
			Where(qb.Eq("match_id", matchID)).
			ToSQL()
		if err != nil {
			return crerr.Wrap(err, "build delete hits query")
		}
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return crerr.Wrapf(err, "delete hits match=%d", matchID)
		}

		if len(models) == 0 {
			return nil
		}
		insertSQL, insertArgs, err := qb.InsertModels(buzzerbeaterHitsTable, models, "")
		if err != nil {
			return crerr.Wrap(err, "build insert hits query")
		}
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return crerr.Wrapf(err, "insert hits match=%d", matchID)
		}
		return nil
	})
}

func (r *HitRepository) ListByMatch(ctx context.Context, matchID int64) ([]buzzerbeater.Hit, error) {
	query, args, err := qb.Select("id", "match_id", "event_index", "payload", "created_at").
		From(buzzerbeaterHitsTable).
		Where(qb.Eq("match_id", matchID)).
		OrderBy("event_index").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list hits query")
	}

	var rows []buzzerbeaterHitTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list hits match=%d", matchID)
	}

	out := make([]buzzerbeater.Hit, 0, len(rows))
	for _, row := range rows {
		hit, err := hitFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, hit)
	}
	return out, nil
}

func hitInsertModel(matchID int64, hit buzzerbeater.Hit) (buzzerbeaterHitInsertModel, error) {
	hit.MatchID = matchID
	payload, err := sonic.Marshal(hit)
	if err != nil {
		return buzzerbeaterHitInsertModel{}, crerr.Wrapf(err, "encode hit match=%d event=%d", matchID, hit.EventIndex)
	}

	model := buzzerbeaterHitInsertModel{
		MatchID:    matchID,
		EventIndex: hit.EventIndex,
		TeamIndex:  hit.TeamIndex,
		TeamName:   hit.Team,
		Period:     hit.Period,
		GameClock:  hit.GameClock,
		RealClock:  hit.RealClock,
		LinkedKind: string(hit.LinkedKind),
		Payload:    payload,
	}
	if hit.Score != nil {
		model.ScoreHomeAfter = sql.NullInt64{Int64: int64(hit.Score.After.Home), Valid: true}
		model.ScoreAwayAfter = sql.NullInt64{Int64: int64(hit.Score.After.Away), Valid: true}
	}
	return model, nil
}

func hitFromRow(row buzzerbeaterHitTableModel) (buzzerbeater.Hit, error) {
	var hit buzzerbeater.Hit
	if err := sonic.Unmarshal(row.Payload, &hit); err != nil {
		return buzzerbeater.Hit{}, crerr.Wrapf(err, "decode hit id=%d", row.ID)
	}
	hit.MatchID = row.MatchID
	hit.EventIndex = row.EventIndex
	return hit, nil
}
