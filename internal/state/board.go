package state

import (
	"context"
	"database/sql"

	"github.com/llehouerou/reorder/internal/board"
	dbutil "github.com/llehouerou/reorder/internal/db"
)

func loadBoard(ctx context.Context, db *sql.DB) ([]board.Column, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT c.id, c.title, k.id, k.title, m.title
		FROM board_columns c
		LEFT JOIN cards k ON k.column_id = c.id
		LEFT JOIN card_merged m ON m.card_id = k.id
		ORDER BY c.position, k.position, m.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []board.Column
	for rows.Next() {
		var colID, colTitle string
		var cardID, cardTitle, merged sql.NullString
		if err := rows.Scan(&colID, &colTitle, &cardID, &cardTitle, &merged); err != nil {
			return nil, err
		}

		if len(columns) == 0 || columns[len(columns)-1].ID != colID {
			columns = append(columns, board.Column{ID: colID, Title: colTitle, Cards: []board.Card{}})
		}
		if !cardID.Valid {
			continue
		}

		col := &columns[len(columns)-1]
		if n := len(col.Cards); n == 0 || col.Cards[n-1].ID != cardID.String {
			col.Cards = append(col.Cards, board.Card{
				ID:    cardID.String,
				Title: dbutil.NullStringValue(cardTitle),
			})
		}
		if merged.Valid {
			card := &col.Cards[len(col.Cards)-1]
			card.Merged = append(card.Merged, merged.String)
		}
	}
	return columns, rows.Err()
}

func saveBoard(ctx context.Context, sqlDB *sql.DB, columns []board.Column) error {
	return dbutil.WithTx(ctx, sqlDB, func(tx *sql.Tx) error {
		for _, table := range []string{"card_merged", "cards", "board_columns"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return err
			}
		}

		stmts, err := dbutil.Prepare(tx,
			`INSERT INTO board_columns (id, position, title) VALUES (?, ?, ?)`,
			`INSERT INTO cards (id, column_id, position, title) VALUES (?, ?, ?, ?)`,
			`INSERT INTO card_merged (card_id, position, title) VALUES (?, ?, ?)`,
		)
		if err != nil {
			return err
		}
		defer dbutil.CloseAll(stmts)
		insertColumn, insertCard, insertMerged := stmts[0], stmts[1], stmts[2]

		for i, col := range columns {
			if _, err := insertColumn.ExecContext(ctx, col.ID, i, col.Title); err != nil {
				return err
			}
			for j, card := range col.Cards {
				if _, err := insertCard.ExecContext(ctx, card.ID, col.ID, j, card.Title); err != nil {
					return err
				}
				for k, title := range card.Merged {
					if _, err := insertMerged.ExecContext(ctx, card.ID, k, title); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
