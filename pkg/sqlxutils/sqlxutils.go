package sqlxutils

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"
)

// Select runs a query and scans all rows into dest. No rows is not an error.
func Select(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, q, dest, query, args...)
}

// Get runs a query and scans exactly one row into dest. It returns
// sql.ErrNoRows when nothing matches.
func Get(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, q, dest, query, args...)
}

// RunTx executes fn in a transaction. The transaction is committed when fn
// returns nil and rolled back on error or panic.
func RunTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}
