// Package db holds small helpers shared by the sqlite-backed stores.
package db

import (
	"context"
	"database/sql"
)

// WithTx runs fn inside a transaction. The transaction is rolled back when
// fn or the commit fails.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Prepare prepares every statement on tx. On failure the statements already
// prepared are closed.
func Prepare(tx *sql.Tx, queries ...string) ([]*sql.Stmt, error) {
	stmts := make([]*sql.Stmt, 0, len(queries))
	for _, q := range queries {
		stmt, err := tx.Prepare(q)
		if err != nil {
			CloseAll(stmts)
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// CloseAll closes prepared statements, ignoring errors.
func CloseAll(stmts []*sql.Stmt) {
	for _, s := range stmts {
		s.Close()
	}
}

// NullStringValue returns the string value or empty string if not valid.
func NullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}
