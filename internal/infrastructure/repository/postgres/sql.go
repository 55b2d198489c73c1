package postgres

import (
	"context"
	"database/sql"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// withTx runs fn inside a transaction and commits when fn returns nil.
func withTx(ctx context.Context, db *sqlx.DB, name string, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrapf(err, "begin tx for %s", name)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return crerr.Wrapf(err, "commit %s tx", name)
	}
	return nil
}
